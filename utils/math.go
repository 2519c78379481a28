package utils

import (
	"math"
)

func Deg(rad float64) float64 { return rad * 180. / math.Pi }

func Rad(deg float64) float64 { return deg * math.Pi / 180. }
