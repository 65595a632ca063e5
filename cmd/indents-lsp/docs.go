package main

import (
	"sync"

	"github.com/maximizer/indents/ir"
	"github.com/maximizer/indents/parse"

	"go.lsp.dev/protocol"
)

type document struct {
	text string
	tree *ir.Tree
	rows map[int]ir.Index
	err  error
}

func newDocument(text string) *document {
	doc := &document{text: text}
	doc.tree, doc.rows, doc.err = parse.ParseRows([]byte(text))
	return doc
}

type documentStore struct {
	mu   sync.RWMutex
	docs map[protocol.DocumentURI]*document
}

func (s *documentStore) get(uri protocol.DocumentURI) *document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.docs[uri]
}

func (s *documentStore) set(uri protocol.DocumentURI, text string) *document {
	doc := newDocument(text)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[uri] = doc
	return doc
}

func (s *documentStore) remove(uri protocol.DocumentURI) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}
