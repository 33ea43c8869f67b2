package zoom

import (
	"context"
	"net/url"
	"strconv"

	"github.com/cloudeagle/zoomctl/internal/instrumentation"
)

// Request defaults.
const (
	DefaultUserStatus  = "active"
	ActivityPageSize   = 100
	DefaultMeetingType = "scheduled"
	ActivityDateLayout = "2006-01-02"
)

// CurrentUser fetches GET /users/me.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	var user User
	if err := c.getJSON(ctx, instrumentation.OperationCurrentUser, c.apiBaseURL+"/users/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// AccountInfo fetches GET /accounts/me. It requires an admin-scoped token;
// user-level tokens typically get a 4xx APIRequestError.
func (c *Client) AccountInfo(ctx context.Context) (*Account, error) {
	var account Account
	if err := c.getJSON(ctx, instrumentation.OperationAccountInfo, c.apiBaseURL+"/accounts/me", &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// AccountPlans fetches GET /accounts/me/plans.
func (c *Client) AccountPlans(ctx context.Context) (*AccountPlans, error) {
	var plans AccountPlans
	if err := c.getJSON(ctx, instrumentation.OperationAccountPlans, c.apiBaseURL+"/accounts/me/plans", &plans); err != nil {
		return nil, err
	}
	return &plans, nil
}

// ListUsers fetches a single page of GET /users. An empty status means
// "active"; a pageSize of zero leaves the server default.
func (c *Client) ListUsers(ctx context.Context, status string, pageSize int) (*UserList, error) {
	if status == "" {
		status = DefaultUserStatus
	}
	q := url.Values{}
	q.Set("status", status)
	if pageSize > 0 {
		q.Set("page_size", strconv.Itoa(pageSize))
	}

	var list UserList
	if err := c.getJSON(ctx, instrumentation.OperationListUsers, c.apiBaseURL+"/users?"+q.Encode(), &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// ActivityReport fetches the sign-in/sign-out report for the inclusive date
// range [from, to], both formatted as YYYY-MM-DD. Only the first page of 100
// entries is returned.
func (c *Client) ActivityReport(ctx context.Context, from, to string) (*ActivityReport, error) {
	q := url.Values{}
	q.Set("from", from)
	q.Set("to", to)
	q.Set("page_size", strconv.Itoa(ActivityPageSize))

	var report ActivityReport
	if err := c.getJSON(ctx, instrumentation.OperationActivityReport, c.apiBaseURL+"/report/activities?"+q.Encode(), &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// ListMeetings fetches a single page of GET /users/me/meetings. An empty
// meetingType means "scheduled"; a pageSize of zero leaves the server default.
func (c *Client) ListMeetings(ctx context.Context, meetingType string, pageSize int) (*MeetingList, error) {
	if meetingType == "" {
		meetingType = DefaultMeetingType
	}
	q := url.Values{}
	q.Set("type", meetingType)
	if pageSize > 0 {
		q.Set("page_size", strconv.Itoa(pageSize))
	}

	var list MeetingList
	if err := c.getJSON(ctx, instrumentation.OperationListMeetings, c.apiBaseURL+"/users/me/meetings?"+q.Encode(), &list); err != nil {
		return nil, err
	}
	return &list, nil
}
