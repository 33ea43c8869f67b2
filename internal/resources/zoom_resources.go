package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/cloudeagle/zoomctl/internal/server"
	"github.com/cloudeagle/zoomctl/internal/zoom"
)

// Resource URIs.
const (
	URIUserProfile = "zoom://user/me"
	URITokenClaims = "zoom://token/claims"
)

const mimeJSON = "application/json"

// RegisterZoomResources registers the session resources with the MCP server.
func RegisterZoomResources(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	profileResource := mcp.NewResource(
		URIUserProfile,
		"Current Zoom User",
		mcp.WithResourceDescription("Profile of the Zoom user who owns the access token"),
		mcp.WithMIMEType(mimeJSON),
	)
	s.AddResource(profileResource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return handleUserProfile(ctx, request, sc)
	})

	claimsResource := mcp.NewResource(
		URITokenClaims,
		"Access Token Claims",
		mcp.WithResourceDescription("Decoded, unverified claims of the Zoom access token"),
		mcp.WithMIMEType(mimeJSON),
	)
	s.AddResource(claimsResource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return handleTokenClaims(ctx, request, sc)
	})

	return nil
}

// userProfile is the current user plus the derived fields.
type userProfile struct {
	*zoom.User
	FullName  string `json:"full_name"`
	TypeLabel string `json:"type_label"`
}

func handleUserProfile(ctx context.Context, request mcp.ReadResourceRequest, sc *server.ServerContext) ([]mcp.ResourceContents, error) {
	client, err := sc.ZoomClient()
	if err != nil {
		return nil, err
	}

	user, err := client.CurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}

	return jsonContents(request.Params.URI, userProfile{
		User:      user,
		FullName:  user.FullName(),
		TypeLabel: user.TypeLabel(),
	})
}

func handleTokenClaims(_ context.Context, request mcp.ReadResourceRequest, sc *server.ServerContext) ([]mcp.ResourceContents, error) {
	client, err := sc.ZoomClient()
	if err != nil {
		return nil, err
	}

	claims, err := zoom.InspectToken(client.AccessToken())
	if err != nil {
		return nil, err
	}

	return jsonContents(request.Params.URI, claims)
}

func jsonContents(uri string, v interface{}) ([]mcp.ResourceContents, error) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resource data: %w", err)
	}

	return []mcp.ResourceContents{
		&mcp.TextResourceContents{
			URI:      uri,
			MIMEType: mimeJSON,
			Text:     string(jsonData),
		},
	}, nil
}
