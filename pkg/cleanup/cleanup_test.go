package cleanup_test

import (
	"errors"
	"testing"

	"github.com/limbo/sketchstreak/pkg/cleanup"
	"github.com/stretchr/testify/assert"
)

func TestCleanUpOrder(t *testing.T) {
	var order []string
	job := func(name string, err error) *cleanup.Job {
		return &cleanup.Job{
			Name: name,
			F: func() error {
				order = append(order, name)
				return err
			},
		}
	}
	cleanup.Register(job("postgres pool", nil))
	cleanup.Register(job("timer registry", errors.New("already closed")))
	cleanup.Register(job("notification hub", nil))

	cleanup.CleanUp()
	assert.Equal(t, []string{"notification hub", "timer registry", "postgres pool"}, order)

	// Jobs are dropped after running
	cleanup.CleanUp()
	assert.Len(t, order, 3)
}
