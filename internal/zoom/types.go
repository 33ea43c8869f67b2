package zoom

import "strings"

// TokenState is the result of a successful authorization code exchange.
type TokenState struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	RefreshToken string `json:"refresh_token,omitempty"`
	Scope        string `json:"scope,omitempty"`
}

// User is a Zoom user as returned by /users/me and /users.
type User struct {
	ID                 string `json:"id"`
	FirstName          string `json:"first_name"`
	LastName           string `json:"last_name"`
	DisplayName        string `json:"display_name,omitempty"`
	Email              string `json:"email"`
	Type               int    `json:"type"`
	RoleName           string `json:"role_name,omitempty"`
	RoleID             string `json:"role_id,omitempty"`
	PMI                int64  `json:"pmi,omitempty"`
	UsePMI             bool   `json:"use_pmi,omitempty"`
	PersonalMeetingURL string `json:"personal_meeting_url,omitempty"`
	Timezone           string `json:"timezone,omitempty"`
	Verified           int    `json:"verified,omitempty"`
	Dept               string `json:"dept,omitempty"`
	AccountID          string `json:"account_id,omitempty"`
	CreatedAt          string `json:"created_at,omitempty"`
	LastLoginTime      string `json:"last_login_time,omitempty"`
	LastClientVersion  string `json:"last_client_version,omitempty"`
	Language           string `json:"language,omitempty"`
	Status             string `json:"status,omitempty"`
}

// FullName joins first and last name.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// TypeLabel returns the display label of the user's type.
func (u User) TypeLabel() string {
	return UserTypeLabel(u.Type)
}

// UserList is one page of the /users listing.
type UserList struct {
	PageCount    int    `json:"page_count"`
	PageNumber   int    `json:"page_number"`
	PageSize     int    `json:"page_size"`
	TotalRecords int    `json:"total_records"`
	Users        []User `json:"users"`
}

// AccountOptions holds the account-level settings returned with account info.
type AccountOptions struct {
	ShareRC               bool   `json:"share_rc"`
	RoomConnectorToken    string `json:"room_connector_token,omitempty"`
	ShareMC               bool   `json:"share_mc"`
	MeetingConnectorToken string `json:"meeting_connector_token,omitempty"`
	PayMode               string `json:"pay_mode,omitempty"`
}

// Account is the response of /accounts/me.
type Account struct {
	ID                  string          `json:"id"`
	AccountName         string          `json:"account_name"`
	AccountAlias        string          `json:"account_alias,omitempty"`
	AccountSupportName  string          `json:"account_support_name,omitempty"`
	AccountSupportEmail string          `json:"account_support_email,omitempty"`
	Status              string          `json:"status,omitempty"`
	CreatedAt           string          `json:"created_at,omitempty"`
	Options             *AccountOptions `json:"options,omitempty"`
}

// Plan is a single plan entry of an account plan response.
type Plan struct {
	PlanName string `json:"plan_name,omitempty"`
	Type     string `json:"type,omitempty"`
	Hosts    int    `json:"hosts,omitempty"`
	Status   string `json:"status,omitempty"`
}

// AccountPlans is the response of /accounts/me/plans.
type AccountPlans struct {
	PlanBase      *Plan  `json:"plan_base,omitempty"`
	PlanZoomRooms *Plan  `json:"plan_zoom_rooms,omitempty"`
	PlanRecording string `json:"plan_recording,omitempty"`
	PlanAudio     *Plan  `json:"plan_audio,omitempty"`
}

// ActivityLog is a single sign-in/sign-out event.
type ActivityLog struct {
	Email      string `json:"email"`
	Time       string `json:"time"`
	Type       string `json:"type"`
	IPAddress  string `json:"ip_address"`
	ClientType string `json:"client_type"`
	Version    string `json:"version"`
}

// ActivityReport is the response of /report/activities.
type ActivityReport struct {
	From          string        `json:"from"`
	To            string        `json:"to"`
	PageSize      int           `json:"page_size,omitempty"`
	TotalRecords  int           `json:"total_records,omitempty"`
	NextPageToken string        `json:"next_page_token,omitempty"`
	ActivityLogs  []ActivityLog `json:"activity_logs"`
}

// Meeting is a meeting owned by the current user.
type Meeting struct {
	ID        int64  `json:"id"`
	UUID      string `json:"uuid"`
	Topic     string `json:"topic"`
	Type      int    `json:"type"`
	StartTime string `json:"start_time,omitempty"`
	Duration  int    `json:"duration,omitempty"`
	Timezone  string `json:"timezone,omitempty"`
	JoinURL   string `json:"join_url,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// MeetingList is one page of /users/me/meetings.
type MeetingList struct {
	PageSize      int       `json:"page_size"`
	TotalRecords  int       `json:"total_records"`
	NextPageToken string    `json:"next_page_token,omitempty"`
	Meetings      []Meeting `json:"meetings"`
}
