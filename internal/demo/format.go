package demo

import (
	"fmt"
	"io"
	"time"

	"github.com/cloudeagle/zoomctl/internal/logging"
	"github.com/cloudeagle/zoomctl/internal/zoom"
)

// PrintTokenSummary prints the result of a token exchange. The access token
// is always masked. Decoded JWT claims are appended when the token is a JWT.
func PrintTokenSummary(w io.Writer, state *zoom.TokenState) {
	fmt.Fprintln(w, "\n=== Authentication Successful ===")
	fmt.Fprintf(w, "Access Token: %s\n", logging.MaskToken(state.AccessToken))
	fmt.Fprintf(w, "Token Type: %s\n", state.TokenType)
	fmt.Fprintf(w, "Expires In: %d seconds\n", state.ExpiresIn)
	fmt.Fprintf(w, "Scope: %s\n", state.Scope)

	if claims, err := zoom.InspectToken(state.AccessToken); err == nil {
		PrintClaims(w, claims, time.Now())
	}
}

// PrintClaims prints decoded token claims and flags a token that has
// expired at now.
func PrintClaims(w io.Writer, claims *zoom.TokenClaims, now time.Time) {
	fmt.Fprintln(w, "\n--- Token Claims ---")
	printIfSet(w, "Issuer", claims.Issuer)
	printIfSet(w, "Subject", claims.Subject)
	printIfSet(w, "User ID", claims.UserID)
	printIfSet(w, "Account ID", claims.AccountID)
	if !claims.IssuedAt.IsZero() {
		fmt.Fprintf(w, "Issued At: %s\n", claims.IssuedAt.UTC().Format(time.RFC3339))
	}
	if !claims.ExpiresAt.IsZero() {
		fmt.Fprintf(w, "Expires At: %s\n", claims.ExpiresAt.UTC().Format(time.RFC3339))
	}
	if claims.Expired(now) {
		fmt.Fprintln(w, "Status: EXPIRED - run the authorization flow again")
	}
}

// PrintCurrentUser prints the /users/me projection.
func PrintCurrentUser(w io.Writer, u *zoom.User) {
	fmt.Fprintln(w, "\n--- Current User Details ---")
	fmt.Fprintf(w, "User ID: %s\n", u.ID)
	fmt.Fprintf(w, "Email: %s\n", u.Email)
	fmt.Fprintf(w, "First Name: %s\n", u.FirstName)
	fmt.Fprintf(w, "Last Name: %s\n", u.LastName)
	fmt.Fprintf(w, "Display Name: %s\n", u.DisplayName)
	fmt.Fprintf(w, "Account ID: %s\n", u.AccountID)
	fmt.Fprintf(w, "User Type: %s\n", u.TypeLabel())
	fmt.Fprintf(w, "Status: %s\n", u.Status)
	fmt.Fprintf(w, "Timezone: %s\n", u.Timezone)
	printIfSet(w, "Department", u.Dept)
	printIfSet(w, "Role", u.RoleName)
	fmt.Fprintf(w, "Created At: %s\n", u.CreatedAt)
}

// PrintAccountSummary prints the name and id of an account.
func PrintAccountSummary(w io.Writer, a *zoom.Account) {
	fmt.Fprintf(w, "Account Name: %s\n", a.AccountName)
	fmt.Fprintf(w, "Account ID: %s\n", a.ID)
}

// PrintAccount prints every account field plus its options.
func PrintAccount(w io.Writer, a *zoom.Account) {
	fmt.Fprintln(w, "\n--- Account Details ---")
	PrintAccountSummary(w, a)
	fmt.Fprintf(w, "Account Alias: %s\n", a.AccountAlias)
	fmt.Fprintf(w, "Support Name: %s\n", a.AccountSupportName)
	fmt.Fprintf(w, "Support Email: %s\n", a.AccountSupportEmail)
	fmt.Fprintf(w, "Status: %s\n", a.Status)
	fmt.Fprintf(w, "Created At: %s\n", a.CreatedAt)

	if a.Options != nil {
		fmt.Fprintln(w, "\n--- Account Options ---")
		fmt.Fprintf(w, "Pay Mode: %s\n", a.Options.PayMode)
		fmt.Fprintf(w, "Share RC: %t\n", a.Options.ShareRC)
		fmt.Fprintf(w, "Share MC: %t\n", a.Options.ShareMC)
	}
}

// PrintPlans prints the plans attached to the account.
func PrintPlans(w io.Writer, p *zoom.AccountPlans) {
	fmt.Fprintln(w, "\n--- Plan Details ---")
	if p.PlanBase != nil {
		fmt.Fprintf(w, "Base Plan: %s\n", p.PlanBase.PlanName)
		fmt.Fprintf(w, "Plan Type: %s\n", p.PlanBase.Type)
	}
	if p.PlanZoomRooms != nil && p.PlanZoomRooms.PlanName != "" {
		fmt.Fprintf(w, "Zoom Rooms Plan: %s\n", p.PlanZoomRooms.PlanName)
	}
	printIfSet(w, "Recording Plan", p.PlanRecording)
	if p.PlanAudio != nil && p.PlanAudio.PlanName != "" {
		fmt.Fprintf(w, "Audio Plan: %s\n", p.PlanAudio.PlanName)
	}
}

// PrintUsers prints a page of users.
func PrintUsers(w io.Writer, l *zoom.UserList) {
	fmt.Fprintln(w, "\n--- Users Summary ---")
	fmt.Fprintf(w, "Total Records: %d\n", l.TotalRecords)
	fmt.Fprintf(w, "Page Size: %d\n", l.PageSize)
	fmt.Fprintf(w, "Page Number: %d\n", l.PageNumber)
	fmt.Fprintf(w, "Total Pages: %d\n", l.PageCount)

	if len(l.Users) == 0 {
		return
	}
	fmt.Fprintln(w, "\n--- User Details ---")
	for _, u := range l.Users {
		fmt.Fprintf(w, "• %s (%s)\n", u.FullName(), u.Email)
		fmt.Fprintf(w, "  Role: %s | Type: %s | Status: %s\n", u.RoleName, u.TypeLabel(), u.Status)
		if u.Dept != "" {
			fmt.Fprintf(w, "  Department: %s\n", u.Dept)
		}
		if u.LastLoginTime != "" {
			fmt.Fprintf(w, "  Last Login: %s\n", u.LastLoginTime)
		}
		fmt.Fprintln(w)
	}
}

// PrintActivity prints the activity report, showing at most limit entries.
// A limit of zero or less shows everything.
func PrintActivity(w io.Writer, r *zoom.ActivityReport, limit int) {
	fmt.Fprintln(w, "\n--- Activity Report Summary ---")
	fmt.Fprintf(w, "Report Period: %s to %s\n", r.From, r.To)
	fmt.Fprintf(w, "Total Activities: %d\n", len(r.ActivityLogs))

	if len(r.ActivityLogs) == 0 {
		fmt.Fprintln(w, "No sign-in activities found for the specified period.")
		return
	}

	fmt.Fprintln(w, "\n--- Recent Sign-in Activities ---")
	shown := r.ActivityLogs
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}
	for _, a := range shown {
		fmt.Fprintf(w, "• %s\n", a.Email)
		fmt.Fprintf(w, "  Time: %s\n", a.Time)
		fmt.Fprintf(w, "  Type: %s\n", a.Type)
		fmt.Fprintf(w, "  IP: %s\n", a.IPAddress)
		fmt.Fprintf(w, "  Client: %s v%s\n", a.ClientType, a.Version)
		fmt.Fprintln(w)
	}
	if rest := len(r.ActivityLogs) - len(shown); rest > 0 {
		fmt.Fprintf(w, "... and %d more activities\n", rest)
	}
}

// PrintMeetings prints a page of meetings.
func PrintMeetings(w io.Writer, l *zoom.MeetingList) {
	fmt.Fprintln(w, "\n--- Meetings Summary ---")
	fmt.Fprintf(w, "Total Records: %d\n", l.TotalRecords)

	if len(l.Meetings) == 0 {
		fmt.Fprintln(w, "No meetings found.")
		return
	}
	fmt.Fprintln(w, "\n--- Meeting Details ---")
	for _, m := range l.Meetings {
		fmt.Fprintf(w, "• %s (ID: %d)\n", m.Topic, m.ID)
		if m.StartTime != "" {
			fmt.Fprintf(w, "  Start: %s (%s) | Duration: %d min\n", m.StartTime, m.Timezone, m.Duration)
		}
		printIfSet(w, "  Join URL", m.JoinURL)
		fmt.Fprintln(w)
	}
}

// PrintMissingCredentials prints guidance for absent app credentials.
func PrintMissingCredentials(w io.Writer, clientIDVar, clientSecretVar, marketplaceURL string) {
	fmt.Fprintln(w, "Please set the following environment variables:")
	fmt.Fprintf(w, "%s - Your Zoom app Client ID\n", clientIDVar)
	fmt.Fprintf(w, "%s - Your Zoom app Client Secret\n", clientSecretVar)
	fmt.Fprintf(w, "\nYou can get these from: %s\n", marketplaceURL)
}

func printIfSet(w io.Writer, label, value string) {
	if value != "" {
		fmt.Fprintf(w, "%s: %s\n", label, value)
	}
}
