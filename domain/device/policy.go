package device

// SelectDefault applies the default camera selection policy to a list.
// It is a strict priority ladder with no scoring; the first matching
// tier wins and list order only breaks ties within a tier:
//
//  1. front-facing built-in wide-angle camera
//  2. any front-facing device
//  3. back-facing built-in wide-angle camera
//  4. any back-facing device
//  5. first device in directory order
//
// The boolean is false only for an empty list.
func SelectDefault(devices List) (Device, bool) {
	if len(devices) == 0 {
		return Device{}, false
	}
	type match func(Device) bool
	tiers := []match{
		func(d Device) bool { return d.Position == PositionFront && d.Class == ClassBuiltInWideAngle },
		func(d Device) bool { return d.Position == PositionFront },
		func(d Device) bool { return d.Position == PositionBack && d.Class == ClassBuiltInWideAngle },
		func(d Device) bool { return d.Position == PositionBack },
	}
	for _, tier := range tiers {
		for _, d := range devices {
			if tier(d) {
				return d, true
			}
		}
	}
	return devices[0], true
}
