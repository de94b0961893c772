package consts

import "time"

// ReservationTTL is the fixed advisory-claim window. A payer who has not
// committed within this window loses the claim.
const ReservationTTL = 5 * time.Minute

// ReservationKeyPrefix namespaces reservation entries in Redis.
const ReservationKeyPrefix = "reservation"
