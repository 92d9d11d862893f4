package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertyQuery(t *testing.T) {
	query, args, err := propertyQuery("p-1").ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT id, title, host_id, price_per_night, currency, max_guests FROM properties WHERE id = $1",
		query)
	assert.Equal(t, []interface{}{"p-1"}, args)
}

func TestBlockedDatesQuery(t *testing.T) {
	query, args, err := blockedDatesQuery("p-1").ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT start_date, end_date FROM property_blocked_dates WHERE property_id = $1 ORDER BY start_date ASC",
		query)
	assert.Equal(t, []interface{}{"p-1"}, args)
}

func TestActiveBookingsQuery_OnlyBlockingStatuses(t *testing.T) {
	query, args, err := activeBookingsQuery("p-1").ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT check_in, check_out FROM bookings WHERE property_id = $1 AND status IN ($2,$3) ORDER BY check_in ASC",
		query)
	assert.Equal(t, []interface{}{"p-1", "pending", "confirmed"}, args)
}
