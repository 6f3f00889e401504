//go:build mage

package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

var binary = filepath.Join("bin", "ormbuild")

// Compiles the ormbuild command into ./bin.
func (Build) Binary() error {
	_, err := executeCmd("go", withArgs("build", "-trimpath", "-o", binary, "./cmd/ormbuild"), withEnv("CGO_ENABLED", "0"), withStream())
	return err
}

// Installs ormbuild into GOBIN.
func (Build) Install() error {
	_, err := executeCmd("go", withArgs("install", "./cmd/ormbuild"), withEnv("CGO_ENABLED", "0"), withStream())
	return err
}
