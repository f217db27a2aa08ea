package parts

// Versal parts
func init() {
	register(Part{IDCode: 0x14D00093, Name: "XCVP1202", Family: Versal, SLRs: 1, IRLength: 6, ReadbackWords: 0})
}
