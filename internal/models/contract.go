// Package models contains the value types shared across ports and adapters.
package models

import (
	"path/filepath"
	"strings"
)

// ExecFolderPrefix marks the per-execution directories the engine writes
// under the artifacts root.
const ExecFolderPrefix = "exec_"

// Contract is the session contract emitted by the ExecLedger engine.
// The engine schema is not validated beyond "parseable JSON", so every field
// is decoded defensively and missing keys decode to zero values.
type Contract struct {
	SessionID       string
	SessionRoot     string
	SummaryFile     string
	ReportFile      string
	ArtifactsFolder string
	CreatedAt       string
	Warnings        []string
	Hashes          map[string]any
}

// ContractFromMap builds a Contract from the parsed engine JSON.
func ContractFromMap(data map[string]any) *Contract {
	c := &Contract{
		SessionID:       lookupString(data, "sessionId"),
		SessionRoot:     lookupString(data, "sessionRoot"),
		SummaryFile:     lookupString(data, "summaryFile"),
		ReportFile:      lookupString(data, "reportFile"),
		ArtifactsFolder: lookupString(data, "artifactsFolder"),
		CreatedAt:       lookupString(data, "createdAt"),
	}

	if raw, ok := data["warnings"].([]any); ok {
		for _, w := range raw {
			if s, ok := w.(string); ok {
				c.Warnings = append(c.Warnings, s)
			}
		}
	}
	if hashes, ok := data["hashes"].(map[string]any); ok {
		c.Hashes = hashes
	}

	return c
}

// ExecID returns the exec_* segment of the session root, or "" when the
// session root does not contain one.
func (c *Contract) ExecID() string {
	for _, part := range strings.Split(filepath.ToSlash(c.SessionRoot), "/") {
		if strings.HasPrefix(part, ExecFolderPrefix) {
			return part
		}
	}
	return ""
}

func lookupString(data map[string]any, key string) string {
	if s, ok := data[key].(string); ok {
		return s
	}
	return ""
}
