package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

type Server struct {
	conn jsonrpc2.Conn
	docs *documentStore

	// requests arrive one at a time from the read loop of conn
	shutdown bool
	exit     func(code int)
}

func NewServer() *Server {
	return &Server{
		docs: &documentStore{
			docs: make(map[protocol.DocumentURI]*document),
		},
		exit: os.Exit,
	}
}

func (s *Server) handle(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	switch req.Method() {
	case protocol.MethodInitialize:
		return reply(ctx, s.initialize(), nil)
	case protocol.MethodInitialized:
		return reply(ctx, nil, nil)
	case protocol.MethodShutdown:
		s.shutdown = true
		return reply(ctx, nil, nil)
	case protocol.MethodExit:
		code := 1
		if s.shutdown {
			code = 0
		}
		if s.conn != nil {
			s.conn.Close()
		}
		s.exit(code)
		return nil
	case protocol.MethodTextDocumentDidOpen:
		var params protocol.DidOpenTextDocumentParams
		if err := json.Unmarshal(req.Params(), &params); err != nil {
			return replyParseError(ctx, reply, err)
		}
		doc := s.docs.set(params.TextDocument.URI, params.TextDocument.Text)
		return reply(ctx, nil, s.publish(ctx, params.TextDocument.URI, doc))
	case protocol.MethodTextDocumentDidChange:
		var params protocol.DidChangeTextDocumentParams
		if err := json.Unmarshal(req.Params(), &params); err != nil {
			return replyParseError(ctx, reply, err)
		}
		n := len(params.ContentChanges)
		if n == 0 {
			return reply(ctx, nil, nil)
		}
		doc := s.docs.set(params.TextDocument.URI, params.ContentChanges[n-1].Text)
		return reply(ctx, nil, s.publish(ctx, params.TextDocument.URI, doc))
	case protocol.MethodTextDocumentDidClose:
		var params protocol.DidCloseTextDocumentParams
		if err := json.Unmarshal(req.Params(), &params); err != nil {
			return replyParseError(ctx, reply, err)
		}
		s.docs.remove(params.TextDocument.URI)
		return reply(ctx, nil, nil)
	case protocol.MethodTextDocumentHover:
		var params protocol.HoverParams
		if err := json.Unmarshal(req.Params(), &params); err != nil {
			return replyParseError(ctx, reply, err)
		}
		return reply(ctx, s.hover(&params), nil)
	case protocol.MethodTextDocumentFormatting:
		var params protocol.DocumentFormattingParams
		if err := json.Unmarshal(req.Params(), &params); err != nil {
			return replyParseError(ctx, reply, err)
		}
		doc := s.docs.get(params.TextDocument.URI)
		if doc == nil {
			return reply(ctx, nil, nil)
		}
		return reply(ctx, formatEdits(doc.text), nil)
	default:
		return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
	}
}

func replyParseError(ctx context.Context, reply jsonrpc2.Replier, err error) error {
	return reply(ctx, nil, fmt.Errorf("%w: %w", jsonrpc2.ErrParse, err))
}

func (s *Server) initialize() *protocol.InitializeResult {
	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				Change:    protocol.TextDocumentSyncKindFull,
				OpenClose: true,
			},
			HoverProvider:              true,
			DocumentFormattingProvider: true,
		},
		ServerInfo: &protocol.ServerInfo{
			Name:    lsName,
			Version: version,
		},
	}
}

func (s *Server) publish(ctx context.Context, uri protocol.DocumentURI, doc *document) error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics(doc),
	})
}
