package demo

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cloudeagle/zoomctl/internal/instrumentation"
	"github.com/cloudeagle/zoomctl/internal/logging"
	"github.com/cloudeagle/zoomctl/internal/zoom"
)

// Demonstration defaults.
const (
	DemoUserStatus     = "active"
	DemoUserPageSize   = 50
	ActivityWindowDays = 30
	ActivityShowLimit  = 10
	StatePrefix        = "zoomctl-"
)

// ErrNoAuthorizationCode is returned by PromptCode when the user enters an
// empty code.
var ErrNoAuthorizationCode = errors.New("no authorization code provided")

// API is the subset of *zoom.Client the walkthrough needs.
type API interface {
	AuthCodeURL(redirectURI, state string) string
	Exchange(ctx context.Context, code, redirectURI string) (*zoom.TokenState, error)
	HasAccessToken() bool

	CurrentUser(ctx context.Context) (*zoom.User, error)
	AccountInfo(ctx context.Context) (*zoom.Account, error)
	AccountPlans(ctx context.Context) (*zoom.AccountPlans, error)
	ListUsers(ctx context.Context, status string, pageSize int) (*zoom.UserList, error)
	ActivityReport(ctx context.Context, from, to string) (*zoom.ActivityReport, error)
	ListMeetings(ctx context.Context, meetingType string, pageSize int) (*zoom.MeetingList, error)
}

// Runner runs the walkthrough against an API.
type Runner struct {
	API         API
	RedirectURI string

	In  io.Reader
	Out io.Writer
	Err io.Writer

	Logger logging.Logger

	// Now and NewState are overridable for tests.
	Now      func() time.Time
	NewState func() string
}

// NewRunner returns a Runner with the standard defaults filled in.
func NewRunner(api API, redirectURI string, in io.Reader, out, errOut io.Writer, logger logging.Logger) *Runner {
	if logger == nil {
		logger = logging.DefaultLogger()
	}
	return &Runner{
		API:         api,
		RedirectURI: redirectURI,
		In:          in,
		Out:         out,
		Err:         errOut,
		Logger:      logger,
		Now:         time.Now,
		NewState:    NewState,
	}
}

// NewState returns a random OAuth2 state value.
func NewState() string {
	return StatePrefix + uuid.NewString()
}

// Run authorizes when no token is set and then demonstrates every resource.
// Failures of the token exchange and of individual steps are printed, not
// returned; the only returned errors are I/O errors on the prompt.
func (r *Runner) Run(ctx context.Context) error {
	ctx, span := instrumentation.StartSpan(ctx, "demo.run")
	defer span.End()

	if r.API.HasAccessToken() {
		r.Logger.Info("using provided access token", logging.Operation("authorize"))
		r.Demonstrate(ctx)
		return nil
	}

	code, err := r.PromptCode()
	if errors.Is(err, ErrNoAuthorizationCode) {
		fmt.Fprintln(r.Out, "No authorization code provided. Exiting.")
		return nil
	}
	if err != nil {
		return err
	}

	r.Logger.Info("exchanging authorization code for access token", logging.Operation("authorize"))
	state, err := r.API.Exchange(ctx, code, r.RedirectURI)
	if err != nil {
		r.Logger.Error("oauth2 flow failed", logging.Operation("authorize"), logging.Err(err))
		fmt.Fprintf(r.Err, "Authentication failed: %v\n", err)
		return nil
	}
	PrintTokenSummary(r.Out, state)

	r.Demonstrate(ctx)
	return nil
}

// PromptCode prints the authorization URL and instructions, then reads one
// line from In.
func (r *Runner) PromptCode() (string, error) {
	authURL := r.API.AuthCodeURL(r.RedirectURI, r.NewState())

	fmt.Fprintln(r.Out, "\n=== Zoom OAuth2 Authorization ===")
	fmt.Fprintln(r.Out, "1. Open the following URL in your browser:")
	fmt.Fprintln(r.Out, authURL)
	fmt.Fprintln(r.Out, "\n2. Authorize the application")
	fmt.Fprintln(r.Out, "3. Copy the authorization code from the callback URL")
	fmt.Fprintln(r.Out, "   (Look for 'code=' parameter in the URL)")
	fmt.Fprint(r.Out, "\nEnter the authorization code: ")

	scanner := bufio.NewScanner(r.In)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read authorization code: %w", err)
		}
		return "", ErrNoAuthorizationCode
	}
	code := strings.TrimSpace(scanner.Text())
	if code == "" {
		return "", ErrNoAuthorizationCode
	}
	return code, nil
}

// Demonstrate runs every step in order. A failing step never stops the run.
func (r *Runner) Demonstrate(ctx context.Context) {
	r.stepCurrentUser(ctx)
	r.stepAccountInfo(ctx)
	r.stepAccountPlans(ctx)
	r.stepUsers(ctx)
	r.stepActivity(ctx)
	r.stepMeetings(ctx)

	fmt.Fprintln(r.Out, "\n=== Demo Completed ===")
	fmt.Fprintln(r.Out, "OAuth2 authentication flow complete")
	fmt.Fprintln(r.Out, "Resources the token lacks scopes for were reported and skipped")
}

// stepFailed logs and prints a failed step.
func (r *Runner) stepFailed(step, operation string, err error) {
	r.Logger.Error("demo step failed", logging.Operation(operation), logging.Err(err))
	fmt.Fprintf(r.Err, "%s API failed: %v\n", step, err)
}

func (r *Runner) stepCurrentUser(ctx context.Context) {
	fmt.Fprintln(r.Out, "\n=== 1. Fetching Current User Information ===")
	user, err := r.API.CurrentUser(ctx)
	if err != nil {
		r.stepFailed("Current user", "current_user", err)
		return
	}
	r.Logger.Info("fetched current user", logging.Operation("current_user"), logging.UserHash(user.Email))
	PrintCurrentUser(r.Out, user)
}

// stepAccountInfo treats an API rejection as the expected outcome for
// tokens without admin scopes.
func (r *Runner) stepAccountInfo(ctx context.Context) {
	fmt.Fprintln(r.Out, "\n=== 2. Account Information (Limited Access) ===")
	account, err := r.API.AccountInfo(ctx)
	if err != nil {
		var apiErr *zoom.APIRequestError
		if !errors.As(err, &apiErr) {
			r.stepFailed("Account info", "account_info", err)
			return
		}
		r.Logger.Debug("account info unavailable", logging.Operation("account_info"), logging.Err(err))
		fmt.Fprintln(r.Out, "Account-level APIs require admin privileges")
		fmt.Fprintln(r.Out, "   Current account has user-level access only")
		fmt.Fprintln(r.Out, "   This is normal for Basic/Pro accounts")
		return
	}
	PrintAccountSummary(r.Out, account)
}

func (r *Runner) stepAccountPlans(ctx context.Context) {
	fmt.Fprintln(r.Out, "\n=== 3. Fetching Account Plans ===")
	plans, err := r.API.AccountPlans(ctx)
	if err != nil {
		r.stepFailed("Account plans", "account_plans", err)
		return
	}
	PrintPlans(r.Out, plans)
}

func (r *Runner) stepUsers(ctx context.Context) {
	fmt.Fprintln(r.Out, "\n=== 4. Fetching Users List ===")
	list, err := r.API.ListUsers(ctx, DemoUserStatus, DemoUserPageSize)
	if err != nil {
		r.stepFailed("Users list", "list_users", err)
		return
	}
	PrintUsers(r.Out, list)
}

func (r *Runner) stepActivity(ctx context.Context) {
	fmt.Fprintln(r.Out, "\n=== 5. Fetching Activity Reports (Sign-in Events) ===")
	from, to := ActivityRange(r.Now(), ActivityWindowDays)
	report, err := r.API.ActivityReport(ctx, from, to)
	if err != nil {
		r.stepFailed("Activity reports", "activity_report", err)
		return
	}
	PrintActivity(r.Out, report, ActivityShowLimit)
}

func (r *Runner) stepMeetings(ctx context.Context) {
	fmt.Fprintln(r.Out, "\n=== 6. Fetching Scheduled Meetings ===")
	list, err := r.API.ListMeetings(ctx, zoom.DefaultMeetingType, 0)
	if err != nil {
		r.stepFailed("Meetings", "list_meetings", err)
		return
	}
	PrintMeetings(r.Out, list)
}

// ActivityRange returns the YYYY-MM-DD bounds of the window of days ending at now.
func ActivityRange(now time.Time, days int) (from, to string) {
	return now.AddDate(0, 0, -days).Format(zoom.ActivityDateLayout), now.Format(zoom.ActivityDateLayout)
}
