package bookings

// Nights returns the whole-day length of the stay. Endpoints are already
// normalized to UTC midnight, so the division is exact.
func Nights(stay StayRange) int64 {
	return int64(stay.CheckOut.Sub(stay.CheckIn).Hours() / 24)
}

// StayPrice is the total cost of the stay at the given nightly rate.
func StayPrice(pricePerNight int64, stay StayRange) int64 {
	return pricePerNight * Nights(stay)
}
