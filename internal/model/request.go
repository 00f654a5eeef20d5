package model

import (
	"fmt"
	"strings"
)

type RequestKind string

const (
	RequestFile      RequestKind = "file"
	RequestStructure RequestKind = "structure"
	RequestAll       RequestKind = "all"
)

// FileRequest is a parsed request to create one file kind, with the
// positional options the token carried.
type FileRequest struct {
	Kind    FileKind
	Options map[string]string
}

// Filename returns the target filename for the request, honoring a
// filename option when the kind accepts one.
func (r FileRequest) Filename() string {
	if name := r.Options["filename"]; name != "" {
		return name
	}
	return DefaultFilename(r.Kind)
}

// Request is the parse result for a single creation token: a structure,
// a file request, or the catch-all expansion.
type Request struct {
	Kind      RequestKind
	Structure StructureKind
	File      FileRequest
}

// ParseToken parses one creation token, e.g. "l:apache:Jane", "full"
// or "*". The token head resolves through the alias tables, structure
// aliases first. The tail splits on ":" into positional option values
// zipped against the kind's option keys; empty segments are omitted.
// Parsing never touches the filesystem.
func ParseToken(token string) (Request, error) {
	head, tail, _ := strings.Cut(strings.TrimSpace(token), ":")
	head = strings.ToLower(head)
	if head == "" {
		return Request{}, fmt.Errorf("empty creation token")
	}

	if allAliases[head] {
		return Request{Kind: RequestAll}, nil
	}
	if structure, ok := structureAliases[head]; ok {
		return Request{Kind: RequestStructure, Structure: structure}, nil
	}
	kind, ok := fileKindAliases[head]
	if !ok {
		return Request{}, fmt.Errorf("unknown creation token %q", token)
	}

	req := FileRequest{Kind: kind}
	if tail != "" {
		keys := OptionKeys(kind)
		values := strings.Split(tail, ":")
		for i, key := range keys {
			if i >= len(values) {
				break
			}
			if v := strings.TrimSpace(values[i]); v != "" {
				if req.Options == nil {
					req.Options = make(map[string]string)
				}
				req.Options[key] = v
			}
		}
	}
	return Request{Kind: RequestFile, File: req}, nil
}

// ParseTokens parses a token list in order. Unknown tokens become
// warnings, not errors: the remaining tokens still parse.
func ParseTokens(tokens []string) ([]Request, []string) {
	var requests []Request
	var warnings []string
	for _, token := range tokens {
		req, err := ParseToken(token)
		if err != nil {
			warnings = append(warnings, err.Error())
			continue
		}
		requests = append(requests, req)
	}
	return requests, warnings
}
