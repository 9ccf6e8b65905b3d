package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone_AcceptedShapes(t *testing.T) {
	cases := []string{
		"0712345678",
		"712345678",
		"+254712345678",
		"254712345678",
		"0712 345 678",
		"+254-712-345-678",
	}

	for _, in := range cases {
		got, err := NormalizePhone(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, "254712345678", got, "input %q", in)
	}
}

func TestNormalizePhone_AirtelPrefix(t *testing.T) {
	got, err := NormalizePhone("0110123456")
	require.NoError(t, err)
	assert.Equal(t, "254110123456", got)
}

func TestNormalizePhone_Rejected(t *testing.T) {
	cases := []string{
		"",
		"12345",
		"0812345678",     // unknown prefix
		"07123456789",    // too long
		"071234567",      // too short
		"2547123456789",  // too long international
		"25471234567",    // too short international
		"+1 202 555 0176",
		"not-a-number",
		"0712345678x",
	}

	for _, in := range cases {
		_, err := NormalizePhone(in)
		require.Error(t, err, "input %q", in)
		assert.ErrorIs(t, err, ErrValidation, "input %q", in)
	}
}

func TestBooking_EligibleForCertificate(t *testing.T) {
	cases := []struct {
		name       string
		attendance AttendanceStatus
		override   bool
		want       bool
	}{
		{"attended without override", AttendanceAttended, false, true},
		{"unverified without override", AttendanceUnverified, false, false},
		{"partial without override", AttendancePartial, false, false},
		{"absent without override", AttendanceAbsent, false, false},
		{"override beats unverified", AttendanceUnverified, true, true},
		{"override beats absent", AttendanceAbsent, true, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := &Booking{AttendanceStatus: tc.attendance, CertificateEnabled: tc.override}
			assert.Equal(t, tc.want, b.EligibleForCertificate())
		})
	}
}
