// Package system contains the local system command collaborator for the
// resolver chain. The SystemHandler interface resides in the core package.
//
// The Registry ships with portable built-ins (clock and date replies) and
// lets hosts mount their own handlers for platform specific commands
// (application launching, volume control, power management) without the
// resolver knowing about any of them. Handlers run in registration order;
// the first one that reports handled wins.
package system
