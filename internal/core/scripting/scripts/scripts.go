// Package scripts holds the gameplay scripts shipped with the engine.
package scripts

import (
	"errors"

	"github.com/caveman250/PlumbusEngine/internal/core/scripting"
)

// Register adds every built-in script to the runtime. Rotator is also
// registered as TestClass, the name engine test scenes attach it under.
func Register(rt *scripting.Runtime) error {
	return errors.Join(
		rt.RegisterScript("Rotator", NewRotator),
		rt.RegisterScript("TestClass", NewRotator),
		rt.RegisterScript("Orbit", NewOrbit),
	)
}
