package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appErrors "github.com/Ry3n-Huang/PawPal-Cloud-Computing-Project/pkg/errors"
)

// queryString returns the trimmed query value, or nil when absent.
func queryString(c *gin.Context, name string) *string {
	value, ok := c.GetQuery(name)
	if !ok || value == "" {
		return nil
	}
	return &value
}

func queryBool(c *gin.Context, name string) (*bool, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidArgument, name+" must be true or false")
	}
	return &value, nil
}

func queryInt(c *gin.Context, name string) (*int, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidArgument, name+" must be an integer")
	}
	return &value, nil
}

func queryFloat(c *gin.Context, name string) (*float64, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidArgument, name+" must be a number")
	}
	return &value, nil
}
