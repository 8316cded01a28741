// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/coursepulse/coursepulse/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the CoursePulse MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, source contract.EventSource, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"CoursePulse Analysis Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		source:  source,
		mgr:     mgr,
	}

	// --- 1. Tool: analyze_students ---
	s.AddTool(mcp.NewTool("analyze_students",
		mcp.WithDescription("Classify each student's commit history into behavioral patterns with severity and recommendations."),
		mcp.WithString("dataset_path", mcp.Description("Path to the course dataset JSON file."), mcp.Required()),
		mcp.WithString("course_start", mcp.Description("Course start date (RFC3339 or YYYY-MM-DD). Overrides the dataset window.")),
		mcp.WithString("course_end", mcp.Description("Course end date (RFC3339 or YYYY-MM-DD). Overrides the dataset window.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of priority interventions returned.")),
	), h.handleAnalyzeStudents)

	// --- 2. Tool: analyze_teams ---
	s.AddTool(mcp.NewTool("analyze_teams",
		mcp.WithDescription("Analyze team repositories for contribution imbalance across members."),
		mcp.WithString("dataset_path", mcp.Description("Path to the course dataset JSON file."), mcp.Required()),
		mcp.WithString("course_start", mcp.Description("Course start date (RFC3339 or YYYY-MM-DD). Overrides the dataset window.")),
		mcp.WithString("course_end", mcp.Description("Course end date (RFC3339 or YYYY-MM-DD). Overrides the dataset window.")),
	), h.handleAnalyzeTeams)

	// --- 3. Tool: get_course_summary ---
	s.AddTool(mcp.NewTool("get_course_summary",
		mcp.WithDescription("Summarize a course: severity breakdown, common patterns and the priority intervention ranking."),
		mcp.WithString("dataset_path", mcp.Description("Path to the course dataset JSON file."), mcp.Required()),
		mcp.WithString("course_start", mcp.Description("Course start date (RFC3339 or YYYY-MM-DD). Overrides the dataset window.")),
		mcp.WithString("course_end", mcp.Description("Course end date (RFC3339 or YYYY-MM-DD). Overrides the dataset window.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of priority interventions returned.")),
	), h.handleGetCourseSummary)

	// --- 4. Tool: get_thresholds ---
	s.AddTool(mcp.NewTool("get_thresholds",
		mcp.WithDescription("Return the active rule thresholds used for pattern classification."),
	), h.handleGetThresholds)

	return s
}

// StartMCPServer starts the CoursePulse MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, source contract.EventSource, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, source, mgr)
	return server.ServeStdio(s)
}
