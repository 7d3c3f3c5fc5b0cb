// Package permissions maps routes to the roles allowed to call them.
// The table is embedded at build time so a deploy can never ship
// without it.
package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Permission is one route entry. Skip marks public endpoints that
// bypass authentication entirely.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`
}

// FindPermissions matches on the chi route pattern plus method. An
// unlisted route gets the zero Permission: it lists no roles, so the
// RBAC middleware lets any authenticated user through.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	idx := slices.IndexFunc(r.Endpoints, func(entry Permission) bool {
		return entry.Path == path && entry.Method == method
	})
	if idx == -1 {
		return Permission{}
	}

	return r.Endpoints[idx]
}

// Get decodes the embedded table once at wire-up time.
func Get() *PermissionData {
	permissions := &PermissionData{}

	if err := json.Unmarshal(permissionsData, permissions); err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

	return permissions
}
