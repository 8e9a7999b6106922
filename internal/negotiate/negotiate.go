// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package negotiate selects response representations from the Accept
// header and request decoders from the Content-Type header.
package negotiate

import (
	"strconv"
	"strings"

	"github.com/elnormous/contenttype"
)

// Media types served by the document endpoints.
const (
	MIMEApplicationJSON = "application/json"
	MIMEApplicationYAML = "application/yaml"
	MIMEApplicationYML  = "application/yml"
	MIMETextYAML        = "text/yaml"
	MIMETextYML         = "text/yml"
	MIMEForm            = "application/x-www-form-urlencoded"
	MIMEMultipartForm   = "multipart/form-data"
)

// DocumentTypes lists the representations of the API document. The first
// entry is the fallback.
var DocumentTypes = []string{
	MIMEApplicationJSON,
	MIMEApplicationYAML,
	MIMETextYAML,
	MIMETextYML,
}

// mediaRange is one weighted entry of an Accept header.
type mediaRange struct {
	contenttype.MediaType

	quality float64
}

// specificity ranks ranges so that "text/yaml" beats "text/*" beats "*/*".
func (r mediaRange) specificity() int {
	switch {
	case r.Type == "*":
		return 0
	case r.Subtype == "*":
		return 1
	default:
		return 2
	}
}

func (r mediaRange) matches(typ, subtype string) bool {
	return (r.Type == "*" || r.Type == typ) && (r.Subtype == "*" || r.Subtype == subtype)
}

// Negotiate picks the entry of supported the client prefers most.
//
// Each supported type is weighted by the quality of the most specific media
// range in accept that matches it; weight 0 excludes the type. Among equally
// weighted types the one listed first in supported wins. An empty header, or
// one that matches nothing, selects supported[0].
func Negotiate(accept string, supported []string) string {
	if len(supported) == 0 {
		return ""
	}

	ranges := parseAccept(accept)
	if len(ranges) == 0 {
		return supported[0]
	}

	best, bestQuality := "", 0.0
	for _, candidate := range supported {
		typ, subtype, ok := strings.Cut(candidate, "/")
		if !ok {
			continue
		}

		quality, specificity := 0.0, -1
		for _, r := range ranges {
			if r.matches(typ, subtype) && r.specificity() > specificity {
				quality, specificity = r.quality, r.specificity()
			}
		}

		if quality > bestQuality {
			best, bestQuality = candidate, quality
		}
	}

	if best == "" {
		return supported[0]
	}
	return best
}

// parseAccept reads the media ranges of an Accept header. Entries that do
// not parse, or carry an out-of-range quality, are skipped.
func parseAccept(accept string) []mediaRange {
	var ranges []mediaRange
	for _, part := range strings.Split(accept, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if part == "*" {
			part = "*/*"
		}

		mediaType, err := contenttype.ParseMediaType(part)
		if err != nil {
			continue
		}
		mediaType.Type = strings.ToLower(mediaType.Type)
		mediaType.Subtype = strings.ToLower(mediaType.Subtype)

		quality := 1.0
		if q, ok := mediaType.Parameters["q"]; ok {
			quality, err = strconv.ParseFloat(q, 64)
			if err != nil || quality < 0 || quality > 1 {
				continue
			}
		}

		ranges = append(ranges, mediaRange{MediaType: mediaType, quality: quality})
	}

	return ranges
}
