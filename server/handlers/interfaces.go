// Package handlers provides HTTP handlers for the activity server.
//
// Each handler is in its own file and implements http.Handler.
// Handlers use interfaces to access server dependencies, avoiding
// circular imports.
package handlers

import (
	"github.com/mergington/activityserver/config"
	"github.com/mergington/activityserver/registry"
)

// ActivityRegistry provides access to the activity roster.
type ActivityRegistry interface {
	List() map[string]registry.Activity
	Activity(name string) (registry.Activity, error)
	Enroll(name, email string) error
	Withdraw(name, email string) error
}

// SignupRecorder records signup and withdrawal outcomes.
type SignupRecorder interface {
	RecordSignup(activity string, err error)
	RecordWithdrawal(activity string, err error)
	SetRoster(activity string, enrolled, capacity int)
}

// ConfigProvider provides access to the current configuration.
type ConfigProvider interface {
	Config() *config.Config
}

// Reloader can reload its configuration.
type Reloader interface {
	Reload() error
}
