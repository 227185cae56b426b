package facade

import (
	"time"

	"github.com/caveman250/PlumbusEngine/internal/core/native"
)

type Application struct {
	surface native.Surface
}

func NewApplication(surface native.Surface) Application {
	return Application{surface: surface}
}

// DeltaTime is the duration of the last engine frame in seconds.
func (a Application) DeltaTime() float64 {
	return a.surface.ApplicationGetDeltaTime()
}

func (a Application) FrameDuration() time.Duration {
	return time.Duration(a.DeltaTime() * float64(time.Second))
}
