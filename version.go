package main

// Version is reported by --version. Release builds override it via ldflags.
const Version = "0.3.0-dev"
