//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Check mg.Namespace

// Runs go vet on every package.
func (Check) Vet() error {
	_, err := executeCmd("go", withArgs("vet", "./..."))
	return err
}

// Runs the test suite.
func (Check) Test() error {
	mg.Deps(Check.Vet)
	_, err := executeCmd("go", withArgs("test", "-count=1", "./..."), withStream())
	return err
}

// Tidies go.mod.
func (Check) Tidy() error {
	_, err := executeCmd("go", withArgs("mod", "tidy"))
	return err
}
