package router

import (
	"sort"

	"github.com/gin-gonic/gin"

	"restaurant-api/internal/transport/http/ez"
)

// A module implements one or both of these to expose routes.
type APIModule interface{ MountAPI(ez.Routes) }
type AdminModule interface{ MountAdmin(*gin.RouterGroup) }

// Modules implementing prioritizer mount in ascending order; the rest use 100.
type prioritizer interface{ Priority() int }

// Registry collects the modules of one engine.
type Registry struct {
	api   []APIModule
	admin []AdminModule
}

// Register sorts each module into the API and/or admin list by the interfaces
// it implements.
func (r *Registry) Register(mods ...any) {
	for _, mod := range mods {
		if m, ok := mod.(APIModule); ok {
			r.api = append(r.api, m)
		}
		if m, ok := mod.(AdminModule); ok {
			r.admin = append(r.admin, m)
		}
	}
}

func (r *Registry) MountAPI(routes ez.Routes) {
	for _, m := range byPriority(r.api) {
		m.MountAPI(routes)
	}
}

func (r *Registry) MountAdmin(g *gin.RouterGroup) {
	for _, m := range byPriority(r.admin) {
		m.MountAdmin(g)
	}
}

func byPriority[M any](mods []M) []M {
	out := append([]M(nil), mods...)
	sort.SliceStable(out, func(i, j int) bool {
		return priorityOf(out[i]) < priorityOf(out[j])
	})
	return out
}

func priorityOf(v any) int {
	if p, ok := v.(prioritizer); ok {
		return p.Priority()
	}
	return 100
}
