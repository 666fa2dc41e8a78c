// Package platform contains OS integration: locating the user's pictures
// folder and handing image files to the system viewer or file manager.
package platform
