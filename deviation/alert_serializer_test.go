package deviation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAlertSerialization(t *testing.T) {
	require := require.New(t)
	a := &Alert{
		BatchID:        7,
		TempRecorded:   -12,
		Timestamp:      42000,
		SensorID:       "sensor-7",
		Location:       "Lagos customs",
		Severity:       3,
		Type:           AlertExtreme,
		Open:           true,
		PenaltyApplied: false,
	}

	raw, err := a.MarshalBinary()
	require.NoError(err)

	got := &Alert{}
	require.NoError(got.UnmarshalBinary(raw))
	require.Equal(a, got)
}

func TestAlertSerializationRejectsDamage(t *testing.T) {
	require := require.New(t)
	a := &Alert{
		BatchID:      1,
		TempRecorded: 10,
		Timestamp:    1,
		SensorID:     "s",
		Location:     "l",
		Severity:     0,
		Type:         AlertHigh,
		Open:         true,
	}
	raw, err := a.MarshalBinary()
	require.NoError(err)

	require.Error(new(Alert).UnmarshalBinary(raw[:len(raw)-1]))
	require.Error(new(Alert).UnmarshalBinary(append(append([]byte{}, raw...), 0)))
	require.Error(new(Alert).UnmarshalBinary(nil))
}
