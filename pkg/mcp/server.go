// Copyright 2026 cloudygreybeard
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package mcp provides an MCP (Model Context Protocol) server for bookmarks.
//
// The server speaks JSON-RPC over a reader and writer pair, one request per
// line, and handles requests one at a time. The store is reopened for every
// request so the server sees changes made by the CLI in the meantime.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cloudygreybeard/dirfavs/pkg/adapter"
	"github.com/cloudygreybeard/dirfavs/pkg/bookmark"
	"github.com/cloudygreybeard/dirfavs/pkg/ops"
	"github.com/cloudygreybeard/dirfavs/pkg/output"
	"go.uber.org/zap"
)

// ProtocolVersion is the MCP revision implemented.
const ProtocolVersion = "2024-11-05"

// JSON-RPC error codes.
const (
	codeParseError     = -32700
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
	codeServerError    = -32000
)

const (
	uriAll      = "dirfavs://bookmarks"
	uriMarkdown = "dirfavs://markdown"
	uriCategory = "dirfavs://category/"
)

// Opener opens the bookmark service for a single request. The returned
// function releases it.
type Opener func(ctx context.Context) (*ops.Service, func(), error)

// Server implements an MCP server for bookmark resources.
type Server struct {
	open    Opener
	version string
	logger  *zap.Logger
}

// NewServer creates a new MCP server.
func NewServer(open Opener, version string, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{open: open, version: version, logger: logger}
}

// Run reads requests from r and writes responses to w until r is exhausted
// or ctx is cancelled.
func (s *Server) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	decoder := json.NewDecoder(r)
	encoder := json.NewEncoder(w)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		var req Request
		if err := decoder.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			var syntaxErr *json.SyntaxError
			if errors.As(err, &syntaxErr) {
				// The decoder cannot resynchronise after a syntax error.
				_ = encoder.Encode(errorResponse(nil, codeParseError, "Parse error"))
				return fmt.Errorf("reading request: %w", err)
			}
			s.logger.Warn("discarding malformed request", zap.Error(err))
			continue
		}

		resp := s.handleRequest(ctx, &req)
		if resp == nil {
			continue
		}
		if err := encoder.Encode(resp); err != nil {
			return fmt.Errorf("writing response: %w", err)
		}
	}
}

func (s *Server) handleRequest(ctx context.Context, req *Request) *Response {
	s.logger.Debug("request", zap.String("method", req.Method))

	if req.ID == nil && strings.HasPrefix(req.Method, "notifications/") {
		return nil
	}

	switch req.Method {
	case "initialize":
		return s.handleInitialize(req)
	case "ping":
		return result(req.ID, map[string]interface{}{})
	case "resources/list":
		return s.handleResourcesList(ctx, req)
	case "resources/read":
		return s.handleResourcesRead(ctx, req)
	case "tools/list":
		return s.handleToolsList(req)
	case "tools/call":
		return s.handleToolsCall(ctx, req)
	default:
		return errorResponse(req.ID, codeMethodNotFound, "Method not found")
	}
}

func (s *Server) handleInitialize(req *Request) *Response {
	return result(req.ID, map[string]interface{}{
		"protocolVersion": ProtocolVersion,
		"serverInfo": map[string]string{
			"name":    "dirfavs",
			"version": s.version,
		},
		"capabilities": map[string]interface{}{
			"resources": map[string]bool{
				"subscribe":   false,
				"listChanged": false,
			},
			"tools": map[string]interface{}{},
		},
	})
}

func (s *Server) handleResourcesList(ctx context.Context, req *Request) *Response {
	resources := []Resource{
		{
			URI:         uriAll,
			Name:        "All Bookmarks",
			Description: "Every directory bookmark in JSON format",
			MimeType:    "application/json",
		},
		{
			URI:         uriMarkdown,
			Name:        "Bookmarks (Markdown)",
			Description: "Every directory bookmark grouped by category",
			MimeType:    "text/markdown",
		},
	}

	svc, closeFn, err := s.open(ctx)
	if err != nil {
		return errorResponse(req.ID, codeServerError, err.Error())
	}
	defer closeFn()

	for _, category := range bookmark.Categories(svc.Export()) {
		resources = append(resources, Resource{
			URI:         uriCategory + category,
			Name:        fmt.Sprintf("%s Bookmarks", category),
			Description: fmt.Sprintf("Bookmarks in category %s", category),
			MimeType:    "application/json",
		})
	}

	return result(req.ID, map[string]interface{}{"resources": resources})
}

func (s *Server) handleResourcesRead(ctx context.Context, req *Request) *Response {
	var params struct {
		URI string `json:"uri"`
	}
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return errorResponse(req.ID, codeInvalidParams, "Invalid params")
	}

	format := "json"
	mimeType := "application/json"
	var filter bookmark.Filter
	switch {
	case params.URI == uriAll:
	case params.URI == uriMarkdown:
		format = "markdown"
		mimeType = "text/markdown"
	case strings.HasPrefix(params.URI, uriCategory):
		filter.Category = strings.TrimPrefix(params.URI, uriCategory)
	default:
		return errorResponse(req.ID, codeInvalidParams, fmt.Sprintf("Unknown resource: %s", params.URI))
	}

	outAdapter, ok := adapter.GetOutput(format)
	if !ok {
		return errorResponse(req.ID, codeServerError, "Output adapter not found")
	}

	svc, closeFn, err := s.open(ctx)
	if err != nil {
		return errorResponse(req.ID, codeServerError, err.Error())
	}
	defer closeFn()

	match, err := filter.Matcher()
	if err != nil {
		return errorResponse(req.ID, codeInvalidParams, err.Error())
	}
	var marks []bookmark.Bookmark
	for _, b := range svc.Export() {
		if match(b) {
			marks = append(marks, b)
		}
	}

	opts := output.DefaultRenderOptions()
	opts.StorePath = svc.StorePath()
	data, err := outAdapter.Render(marks, opts)
	if err != nil {
		return errorResponse(req.ID, codeServerError, err.Error())
	}

	return result(req.ID, map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"uri":      params.URI,
				"mimeType": mimeType,
				"text":     string(data),
			},
		},
	})
}

func (s *Server) handleToolsList(req *Request) *Response {
	limitSchema := map[string]interface{}{
		"type":        "integer",
		"description": "Maximum number of bookmarks (default 10)",
	}
	tools := []Tool{
		{
			Name:        "search_bookmarks",
			Description: "List bookmarks whose name contains a word, or that belong to a category",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"query":    map[string]interface{}{"type": "string", "description": "Substring of the bookmark name"},
					"category": map[string]interface{}{"type": "string", "description": "Exact category"},
					"glob":     map[string]interface{}{"type": "string", "description": "Glob pattern for the bookmark name"},
				},
			},
		},
		{
			Name:        "resolve_bookmark",
			Description: "Return the directory for a bookmark name and record the visit",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": map[string]interface{}{"type": "string", "description": "Bookmark name"},
				},
				"required": []string{"name"},
			},
		},
		{
			Name:        "recent_bookmarks",
			Description: "Most recently visited bookmarks",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{"limit": limitSchema},
			},
		},
		{
			Name:        "frequent_bookmarks",
			Description: "Most visited bookmarks",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{"limit": limitSchema},
			},
		},
	}

	return result(req.ID, map[string]interface{}{"tools": tools})
}

func (s *Server) handleToolsCall(ctx context.Context, req *Request) *Response {
	var params struct {
		Name      string          `json:"name"`
		Arguments json.RawMessage `json:"arguments"`
	}
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return errorResponse(req.ID, codeInvalidParams, "Invalid params")
	}
	if len(params.Arguments) == 0 {
		params.Arguments = json.RawMessage("{}")
	}

	var call func(ctx context.Context, svc *ops.Service, args json.RawMessage) (string, error)
	switch params.Name {
	case "search_bookmarks":
		call = toolSearch
	case "resolve_bookmark":
		call = toolResolve
	case "recent_bookmarks":
		call = func(_ context.Context, svc *ops.Service, args json.RawMessage) (string, error) {
			n, err := limitArg(args)
			if err != nil {
				return "", err
			}
			return formatBookmarks(svc.Recent(n))
		}
	case "frequent_bookmarks":
		call = func(_ context.Context, svc *ops.Service, args json.RawMessage) (string, error) {
			n, err := limitArg(args)
			if err != nil {
				return "", err
			}
			return formatBookmarks(svc.Frequent(n))
		}
	default:
		return errorResponse(req.ID, codeInvalidParams, "Unknown tool")
	}

	svc, closeFn, err := s.open(ctx)
	if err != nil {
		return errorResponse(req.ID, codeServerError, err.Error())
	}
	defer closeFn()

	text, err := call(ctx, svc, params.Arguments)
	if err != nil {
		// Tool failures are reported in the result so the client can show them.
		return result(req.ID, map[string]interface{}{
			"content": []map[string]interface{}{{"type": "text", "text": err.Error()}},
			"isError": true,
		})
	}

	return result(req.ID, map[string]interface{}{
		"content": []map[string]interface{}{{"type": "text", "text": text}},
	})
}

func toolSearch(_ context.Context, svc *ops.Service, args json.RawMessage) (string, error) {
	var searchArgs struct {
		Query    string `json:"query"`
		Category string `json:"category"`
		Glob     string `json:"glob"`
	}
	if err := json.Unmarshal(args, &searchArgs); err != nil {
		return "", fmt.Errorf("invalid search arguments: %w", err)
	}

	pairs, err := svc.List(bookmark.Filter{
		Category: searchArgs.Category,
		Contains: searchArgs.Query,
		Glob:     searchArgs.Glob,
	})
	if err != nil {
		return "", err
	}

	results := []map[string]string{}
	for name, path := range pairs {
		results = append(results, map[string]string{"name": name, "path": path})
	}

	resultJSON, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Found %d matches:\n%s", len(results), resultJSON), nil
}

func toolResolve(ctx context.Context, svc *ops.Service, args json.RawMessage) (string, error) {
	var resolveArgs struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(args, &resolveArgs); err != nil {
		return "", fmt.Errorf("invalid resolve arguments: %w", err)
	}
	if resolveArgs.Name == "" {
		return "", fmt.Errorf("%w: name", bookmark.ErrMissingArgument)
	}
	return svc.GoTo(ctx, resolveArgs.Name)
}

func limitArg(args json.RawMessage) (int, error) {
	limit := struct {
		Limit *int `json:"limit"`
	}{}
	if err := json.Unmarshal(args, &limit); err != nil {
		return 0, fmt.Errorf("invalid limit: %w", err)
	}
	if limit.Limit == nil {
		return ops.DefaultLimit, nil
	}
	return *limit.Limit, nil
}

func formatBookmarks(marks []bookmark.Bookmark) (string, error) {
	entries := make([]bookmark.Entry, 0, len(marks))
	for _, b := range marks {
		entries = append(entries, bookmark.ToEntry(b))
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func result(id interface{}, v interface{}) *Response {
	return &Response{
		JSONRPC: "2.0",
		ID:      id,
		Result:  v,
	}
}

func errorResponse(id interface{}, code int, message string) *Response {
	return &Response{
		JSONRPC: "2.0",
		ID:      id,
		Error: &Error{
			Code:    code,
			Message: message,
		},
	}
}

// MCP Protocol types

// Request represents a JSON-RPC request.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// Response represents a JSON-RPC response.
type Response struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *Error      `json:"error,omitempty"`
}

// Error represents a JSON-RPC error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Resource represents an MCP resource.
type Resource struct {
	URI         string `json:"uri"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	MimeType    string `json:"mimeType,omitempty"`
}

// Tool represents an MCP tool.
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}
