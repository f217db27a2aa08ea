package parts

// UltraScale parts
func init() {
	register(Part{IDCode: 0x03824093, Name: "XCKU025", Family: US, SLRs: 1, IRLength: 6, ReadbackWords: 4001190})
	register(Part{IDCode: 0x03823093, Name: "XCKU035", Family: US, SLRs: 1, IRLength: 6, ReadbackWords: 4001190})
	register(Part{IDCode: 0x03822093, Name: "XCKU040", Family: US, SLRs: 1, IRLength: 6, ReadbackWords: 4001190})
	register(Part{IDCode: 0x03919093, Name: "XCKU060", Family: US, SLRs: 1, IRLength: 6, ReadbackWords: 6030690})
	register(Part{IDCode: 0x03844093, Name: "XCKU095", Family: US, SLRs: 1, IRLength: 6, ReadbackWords: 8960304})
	register(Part{IDCode: 0x0380F093, Name: "XCKU085", Family: US, SLRs: 2, IRLength: 12, ReadbackWords: 12061380})
	register(Part{IDCode: 0x0390D093, Name: "XCKU115", Family: US, SLRs: 2, IRLength: 12, ReadbackWords: 12061380})
	register(Part{IDCode: 0x03939093, Name: "XCVU065", Family: US, SLRs: 1, IRLength: 6, ReadbackWords: 6271770})
	register(Part{IDCode: 0x03843093, Name: "XCVU080", Family: US, SLRs: 1, IRLength: 6, ReadbackWords: 8960304})
	register(Part{IDCode: 0x03842093, Name: "XCVU095", Family: US, SLRs: 1, IRLength: 6, ReadbackWords: 8960304})
	register(Part{IDCode: 0x0392D093, Name: "XCVU125", Family: US, SLRs: 2, IRLength: 12, ReadbackWords: 12543540})
	register(Part{IDCode: 0x03933093, Name: "XCVU160", Family: US, SLRs: 3, IRLength: 18, ReadbackWords: 18815310})
	register(Part{IDCode: 0x03931093, Name: "XCVU190", Family: US, SLRs: 3, IRLength: 18, ReadbackWords: 18815310})
	register(Part{IDCode: 0x0396D093, Name: "XCVU440", Family: US, SLRs: 3, IRLength: 18, ReadbackWords: 32239530})
}
