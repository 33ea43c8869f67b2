package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudeagle/zoomctl/internal/tools/zoom_tools"
)

func TestGenerateDocs_ListsEveryTool(t *testing.T) {
	out, _, err := executeCommand(t, "", "generate-docs")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "# MCP Tools Reference"))
	assert.Contains(t, out, "- [Zoom Tools](#zoom-tools)")
	for _, name := range []string{
		zoom_tools.ToolCurrentUser,
		zoom_tools.ToolAccountInfo,
		zoom_tools.ToolAccountPlans,
		zoom_tools.ToolListUsers,
		zoom_tools.ToolActivityReport,
		zoom_tools.ToolListMeetings,
	} {
		assert.Contains(t, out, "### "+name+"\n")
	}
	assert.Contains(t, out, "- `page_size` (number, optional): ")
}

func TestGenerateDocs_OutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tools.md")

	out, errOut, err := executeCommand(t, "", "generate-docs", "-o", path)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Documentation written to: "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "### "+zoom_tools.ToolCurrentUser)
}

func TestGetCategoryFromToolName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"zoom_current_user", "Zoom Tools"},
		{"zoom", "Zoom Tools"},
		{"other_tool", "Other"},
		{"", "Other"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, getCategoryFromToolName(tt.name))
		})
	}
}

func TestGenerateToolMarkdown(t *testing.T) {
	tool := mcp.NewTool("zoom_example",
		mcp.WithDescription("Example tool"),
		mcp.WithString("needed", mcp.Required(), mcp.Description("A required value")),
		mcp.WithNumber("count"),
	)

	md := generateToolMarkdown(tool)
	assert.Contains(t, md, "### zoom_example\n\nExample tool\n\n")
	assert.Contains(t, md, "- `count` (number, optional): number parameter\n")
	assert.Contains(t, md, "- `needed` (string, required): A required value\n")

	bare := generateToolMarkdown(mcp.NewTool("zoom_bare"))
	assert.Contains(t, bare, "No arguments.")
}
