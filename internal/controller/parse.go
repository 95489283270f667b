package controller

import (
	"fmt"
	"strconv"
)

func parseUint(raw string) (uint, error) {
	val, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	if val == 0 {
		return 0, fmt.Errorf("must be a positive integer")
	}
	return uint(val), nil
}
