package notifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fixwellinc/household-services-platform-sub010/pkg/notifier"
)

func TestType_Valid(t *testing.T) {
	t.Parallel()

	for _, typ := range []notifier.Type{
		notifier.TypeConfirmation,
		notifier.TypeReminder,
		notifier.TypeCancellation,
		notifier.TypeReschedule,
	} {
		assert.True(t, typ.Valid(), string(typ))
	}

	assert.False(t, notifier.Type("sms").Valid())
	assert.False(t, notifier.Type("").Valid())
}
