package analyzer

// IsUnattached reports whether a volume is not attached to any instance.
func IsUnattached(state string) bool {
	return state == "available"
}

// IsLegacyVolumeType reports whether a volume's storage class is a migration
// candidate. The predicates are independent: a volume can be both unattached
// and legacy-typed.
func IsLegacyVolumeType(volumeType string) bool {
	return volumeType == LegacyVolumeType
}
