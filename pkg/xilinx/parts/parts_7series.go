package parts

// 7-series and Zynq-7000 parts
func init() {
	register(Part{IDCode: 0x03622093, Name: "XC7S6", Family: S7, SLRs: 1, IRLength: 6, ReadbackWords: 134711})
	register(Part{IDCode: 0x03620093, Name: "XC7S15", Family: S7, SLRs: 1, IRLength: 6, ReadbackWords: 134711})
	register(Part{IDCode: 0x037C4093, Name: "XC7S25", Family: S7, SLRs: 1, IRLength: 6, ReadbackWords: 310451})
	register(Part{IDCode: 0x0362F093, Name: "XC7S50", Family: S7, SLRs: 1, IRLength: 6, ReadbackWords: 548003})
	register(Part{IDCode: 0x037C8093, Name: "XC7S75", Family: S7, SLRs: 1, IRLength: 6, ReadbackWords: 921703})
	register(Part{IDCode: 0x037C7093, Name: "XC7S100", Family: S7, SLRs: 1, IRLength: 6, ReadbackWords: 921703})
	register(Part{IDCode: 0x037C3093, Name: "XC7A12T", Family: S7, SLRs: 1, IRLength: 6, ReadbackWords: 310451})
	register(Part{IDCode: 0x0362E093, Name: "XC7A15T", Family: S7, SLRs: 1, IRLength: 6, ReadbackWords: 548003})
	register(Part{IDCode: 0x037C2093, Name: "XC7A25T", Family: S7, SLRs: 1, IRLength: 6, ReadbackWords: 310451})
	register(Part{IDCode: 0x0362D093, Name: "XC7A35T", Family: S7, SLRs: 1, IRLength: 6, ReadbackWords: 548003})
	register(Part{IDCode: 0x0362C093, Name: "XC7A50T", Family: S7, SLRs: 1, IRLength: 6, ReadbackWords: 548003})
	register(Part{IDCode: 0x03632093, Name: "XC7A75T", Family: S7, SLRs: 1, IRLength: 6, ReadbackWords: 956447})
	register(Part{IDCode: 0x03631093, Name: "XC7A100T", Family: S7, SLRs: 1, IRLength: 6, ReadbackWords: 956447})
	register(Part{IDCode: 0x03636093, Name: "XC7A200T", Family: S7, SLRs: 1, IRLength: 6, ReadbackWords: 2432663})
	register(Part{IDCode: 0x03642093, Name: "XC7K30T", Family: S7, SLRs: 1, IRLength: 6, ReadbackWords: 0})
	register(Part{IDCode: 0x03647093, Name: "XC7K70T", Family: S7, SLRs: 1, IRLength: 6, ReadbackWords: 752831})
	register(Part{IDCode: 0x0364C093, Name: "XC7K160T", Family: S7, SLRs: 1, IRLength: 6, ReadbackWords: 1673143})
	register(Part{IDCode: 0x03651093, Name: "XC7K325T", Family: S7, SLRs: 1, IRLength: 6, ReadbackWords: 2860903})
	register(Part{IDCode: 0x03747093, Name: "XC7K355T", Family: S7, SLRs: 1, IRLength: 6, ReadbackWords: 3512959})
	register(Part{IDCode: 0x03656093, Name: "XC7K410T", Family: S7, SLRs: 1, IRLength: 6, ReadbackWords: 3969479})
	register(Part{IDCode: 0x03752093, Name: "XC7K420T", Family: S7, SLRs: 1, IRLength: 6, ReadbackWords: 4683751})
	register(Part{IDCode: 0x03751093, Name: "XC7K480T", Family: S7, SLRs: 1, IRLength: 6, ReadbackWords: 4683751})
	register(Part{IDCode: 0x03671093, Name: "XC7V585T", Family: S7, SLRs: 1, IRLength: 6, ReadbackWords: 5043715})
	register(Part{IDCode: 0x036B3093, Name: "XC7V2000T", Family: S7, SLRs: 4, IRLength: 24, ReadbackWords: 13979288})
	register(Part{IDCode: 0x03667093, Name: "XC7VX330T", Family: S7, SLRs: 1, IRLength: 6, ReadbackWords: 3476195})
	register(Part{IDCode: 0x03682093, Name: "XC7VX415T", Family: S7, SLRs: 1, IRLength: 6, ReadbackWords: 4310455})
	register(Part{IDCode: 0x03687093, Name: "XC7VX485T", Family: S7, SLRs: 1, IRLength: 6, ReadbackWords: 5068359})
	register(Part{IDCode: 0x03692093, Name: "XC7VX550T", Family: S7, SLRs: 1, IRLength: 6, ReadbackWords: 7183703})
	register(Part{IDCode: 0x03691093, Name: "XC7VX690T", Family: S7, SLRs: 1, IRLength: 6, ReadbackWords: 7183703})
	register(Part{IDCode: 0x03696093, Name: "XC7VX980T", Family: S7, SLRs: 1, IRLength: 6, ReadbackWords: 8828791})
	register(Part{IDCode: 0x036D5093, Name: "XC7VX1140T", Family: S7, SLRs: 4, IRLength: 24, ReadbackWords: 12035240})
	register(Part{IDCode: 0x036D9093, Name: "XC7VH580T", Family: S7, SLRs: 3, IRLength: 22, ReadbackWords: 6114469})
	register(Part{IDCode: 0x036DB093, Name: "XC7VH870T", Family: S7, SLRs: 5, IRLength: 38, ReadbackWords: 9187698})

	register(Part{IDCode: 0x03722093, Name: "XC7Z010", Family: Z7, SLRs: 1, IRLength: 6, ReadbackWords: 520935})
	register(Part{IDCode: 0x03727093, Name: "XC7Z020", Family: Z7, SLRs: 1, IRLength: 6, ReadbackWords: 1011391})
	register(Part{IDCode: 0x0372C093, Name: "XC7Z030", Family: Z7, SLRs: 1, IRLength: 6, ReadbackWords: 1494979})
	register(Part{IDCode: 0x03731093, Name: "XC7Z045", Family: Z7, SLRs: 1, IRLength: 6, ReadbackWords: 3330351})
	register(Part{IDCode: 0x03736093, Name: "XC7Z100", Family: Z7, SLRs: 1, IRLength: 6, ReadbackWords: 4354087})
}
