// +build android

package main

// Go binaries cross-compiled for Android cannot read resolv.conf.
import _ "github.com/mtibben/androiddnsfix"
