package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/cloudeagle/zoomctl/internal/demo"
	"github.com/cloudeagle/zoomctl/internal/zoom"
)

// apiCall fetches one resource and returns it along with its text renderer.
type apiCall func(ctx context.Context, c *zoom.Client) (interface{}, func(io.Writer), error)

// newAPICmd builds a command that calls a single Zoom resource with the
// token from ZOOM_ACCESS_TOKEN. API failures are returned and exit non-zero.
func newAPICmd(root *rootOptions, use, short string, call apiCall) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, root, needAccessToken)
			if err != nil {
				return err
			}
			defer a.close(cmd.Context())

			result, render, err := call(cmd.Context(), a.client)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			render(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw response as JSON")

	return cmd
}

func newAPICmds(root *rootOptions) []*cobra.Command {
	me := newAPICmd(root, "me", "Show the user who owns the access token",
		func(ctx context.Context, c *zoom.Client) (interface{}, func(io.Writer), error) {
			u, err := c.CurrentUser(ctx)
			if err != nil {
				return nil, nil, err
			}
			return u, func(w io.Writer) { demo.PrintCurrentUser(w, u) }, nil
		})

	account := newAPICmd(root, "account", "Show account details (admin scope)",
		func(ctx context.Context, c *zoom.Client) (interface{}, func(io.Writer), error) {
			acct, err := c.AccountInfo(ctx)
			if err != nil {
				return nil, nil, err
			}
			return acct, func(w io.Writer) { demo.PrintAccount(w, acct) }, nil
		})

	plans := newAPICmd(root, "plans", "Show the plans attached to the account",
		func(ctx context.Context, c *zoom.Client) (interface{}, func(io.Writer), error) {
			p, err := c.AccountPlans(ctx)
			if err != nil {
				return nil, nil, err
			}
			return p, func(w io.Writer) { demo.PrintPlans(w, p) }, nil
		})

	var (
		userStatus   string
		userPageSize int
	)
	users := newAPICmd(root, "users", "List users in the account",
		func(ctx context.Context, c *zoom.Client) (interface{}, func(io.Writer), error) {
			if userPageSize < 0 {
				return nil, nil, fmt.Errorf("--page-size must not be negative")
			}
			l, err := c.ListUsers(ctx, userStatus, userPageSize)
			if err != nil {
				return nil, nil, err
			}
			return l, func(w io.Writer) { demo.PrintUsers(w, l) }, nil
		})
	users.Flags().StringVar(&userStatus, "status", zoom.DefaultUserStatus, "User status: active, inactive or pending")
	users.Flags().IntVar(&userPageSize, "page-size", 0, "Users per page (default: Zoom's page size)")

	var (
		from, to  string
		showLimit int
	)
	activity := newAPICmd(root, "activity", "Show sign-in and sign-out activity",
		func(ctx context.Context, c *zoom.Client) (interface{}, func(io.Writer), error) {
			rangeFrom, rangeTo := demo.ActivityRange(time.Now(), demo.ActivityWindowDays)
			if from != "" {
				rangeFrom = from
			}
			if to != "" {
				rangeTo = to
			}
			if err := validateDate("from", rangeFrom); err != nil {
				return nil, nil, err
			}
			if err := validateDate("to", rangeTo); err != nil {
				return nil, nil, err
			}
			r, err := c.ActivityReport(ctx, rangeFrom, rangeTo)
			if err != nil {
				return nil, nil, err
			}
			return r, func(w io.Writer) { demo.PrintActivity(w, r, showLimit) }, nil
		})
	activity.Flags().StringVar(&from, "from", "", "Start date, YYYY-MM-DD (default: 30 days ago)")
	activity.Flags().StringVar(&to, "to", "", "End date, YYYY-MM-DD (default: today)")
	activity.Flags().IntVar(&showLimit, "limit", demo.ActivityShowLimit, "Number of entries to print")

	var (
		meetingType     string
		meetingPageSize int
	)
	meetings := newAPICmd(root, "meetings", "List meetings of the current user",
		func(ctx context.Context, c *zoom.Client) (interface{}, func(io.Writer), error) {
			if meetingPageSize < 0 {
				return nil, nil, fmt.Errorf("--page-size must not be negative")
			}
			l, err := c.ListMeetings(ctx, meetingType, meetingPageSize)
			if err != nil {
				return nil, nil, err
			}
			return l, func(w io.Writer) { demo.PrintMeetings(w, l) }, nil
		})
	meetings.Flags().StringVar(&meetingType, "type", zoom.DefaultMeetingType, "Meeting type: scheduled, live or upcoming")
	meetings.Flags().IntVar(&meetingPageSize, "page-size", 0, "Meetings per page (default: Zoom's page size)")

	return []*cobra.Command{me, account, plans, users, activity, meetings}
}

func validateDate(name, value string) error {
	if _, err := time.Parse(zoom.ActivityDateLayout, value); err != nil {
		return fmt.Errorf("--%s must be a date in YYYY-MM-DD format, got %q", name, value)
	}
	return nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
