package domain

import "errors"

var (
	ErrDispatch            = errors.New("window dispatch failed")
	ErrHyprlandUnavailable = errors.New("hyprland is not reachable")
	ErrInvalidName         = errors.New("bad name, only alphanumeric characters accepted")
	ErrMismatchedStashType = errors.New("stash type does not match pop type")
	ErrMonitorNotFound     = errors.New("monitor not found")
	ErrNoFocusedTarget     = errors.New("no focused monitor and workspace")
	ErrStashExists         = errors.New("stash already exists")
	ErrStashNotFound       = errors.New("stash not found")
)
