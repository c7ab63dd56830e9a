//go:build android

package main

// Android has no /etc/resolv.conf; pull in the cgo resolver workaround.
import _ "github.com/mtibben/androiddnsfix"
