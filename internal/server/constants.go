package server

import "time"

// visitorCookieMaxAge matches the lifetime of stored visitor preferences.
const visitorCookieMaxAge = 14 * 24 * time.Hour
