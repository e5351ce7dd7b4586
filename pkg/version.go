package constants

var Version = "v0.1.0"
