package util

import (
	"encoding/json"
	"os"

	"golang.org/x/exp/constraints"
)

func Min[A constraints.Ordered](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

func Clamp[A constraints.Ordered](v A, lo A, hi A) A {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func ReadJSONOrPanic[A any](path string) A {
	dat, err := os.ReadFile(path)
	if err != nil {
		panic("Could not read json file: " + err.Error())
	}
	var data A
	if err := json.Unmarshal(dat, &data); err != nil {
		panic("Could not decode json file: " + err.Error())
	}
	return data
}

func WriteJSONOrPanic(path string, data any) {
	dat, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		panic("Could not encode json: " + err.Error())
	}
	if err := os.WriteFile(path, dat, 0666); err != nil {
		panic("Write failed for file: " + path)
	}
}
