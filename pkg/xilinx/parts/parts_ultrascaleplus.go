package parts

// UltraScale+ and Zynq UltraScale+ parts
func init() {
	register(Part{IDCode: 0x04E81093, Name: "SU10P", Family: UP, SLRs: 1, IRLength: 6, ReadbackWords: 10606464})
	register(Part{IDCode: 0x04E82093, Name: "SU25P", Family: UP, SLRs: 1, IRLength: 6, ReadbackWords: 10606464})
	register(Part{IDCode: 0x04E80093, Name: "SU35P", Family: UP, SLRs: 1, IRLength: 6, ReadbackWords: 10606464})
	register(Part{IDCode: 0x04E88093, Name: "SU50P", Family: UP, SLRs: 1, IRLength: 6, ReadbackWords: 15728640})
	register(Part{IDCode: 0x04E90093, Name: "SU55P", Family: UP, SLRs: 1, IRLength: 6, ReadbackWords: 15728640})
	register(Part{IDCode: 0x04E99093, Name: "SU65P", Family: UP, SLRs: 1, IRLength: 6, ReadbackWords: 0})
	register(Part{IDCode: 0x04E98093, Name: "SU100P", Family: UP, SLRs: 1, IRLength: 6, ReadbackWords: 29360128})
	register(Part{IDCode: 0x04EA1093, Name: "SU150P", Family: UP, SLRs: 1, IRLength: 6, ReadbackWords: 57817728})
	register(Part{IDCode: 0x04EA0093, Name: "SU200P", Family: UP, SLRs: 1, IRLength: 6, ReadbackWords: 57817728})
	register(Part{IDCode: 0x04AF6093, Name: "XCAU7P", Family: UP, SLRs: 1, IRLength: 6, ReadbackWords: 767808})
	register(Part{IDCode: 0x04AC4093, Name: "XCAU10P", Family: UP, SLRs: 1, IRLength: 6, ReadbackWords: 1336968})
	register(Part{IDCode: 0x04AC2093, Name: "XCAU15P", Family: UP, SLRs: 1, IRLength: 6, ReadbackWords: 1336968})
	register(Part{IDCode: 0x04A65093, Name: "XCAU20P", Family: UP, SLRs: 1, IRLength: 6, ReadbackWords: 3857268})
	register(Part{IDCode: 0x04A64093, Name: "XCAU25P", Family: UP, SLRs: 1, IRLength: 6, ReadbackWords: 3857268})
	register(Part{IDCode: 0x04A63093, Name: "XCKU3P", Family: UP, SLRs: 1, IRLength: 6, ReadbackWords: 3857268})
	register(Part{IDCode: 0x04A62093, Name: "XCKU5P", Family: UP, SLRs: 1, IRLength: 6, ReadbackWords: 3857268})
	register(Part{IDCode: 0x0484A093, Name: "XCKU9P", Family: UP, SLRs: 1, IRLength: 6, ReadbackWords: 6627180})
	register(Part{IDCode: 0x04A4E093, Name: "XCKU11P", Family: UP, SLRs: 1, IRLength: 6, ReadbackWords: 5894712})
	register(Part{IDCode: 0x04A52093, Name: "XCKU13P", Family: UP, SLRs: 1, IRLength: 6, ReadbackWords: 7174671})
	register(Part{IDCode: 0x04A56093, Name: "XCKU15P", Family: UP, SLRs: 1, IRLength: 6, ReadbackWords: 9085263})
	register(Part{IDCode: 0x04ACF093, Name: "XCKU19P", Family: UP, SLRs: 1, IRLength: 6, ReadbackWords: 16310712})
	register(Part{IDCode: 0x04B39093, Name: "XCVU3P", Family: UP, SLRs: 1, IRLength: 6, ReadbackWords: 6679260})
	register(Part{IDCode: 0x04ACE093, Name: "XCVU23P", Family: UP, SLRs: 1, IRLength: 6, ReadbackWords: 16310712})
	register(Part{IDCode: 0x04B6B093, Name: "XCVU31P", Family: UP, SLRs: 1, IRLength: 6, ReadbackWords: 7081764})
	register(Part{IDCode: 0x04B69093, Name: "XCVU33P", Family: UP, SLRs: 1, IRLength: 6, ReadbackWords: 7081764})
	register(Part{IDCode: 0x04B2B093, Name: "XCVU5P", Family: UP, SLRs: 2, IRLength: 12, ReadbackWords: 13358520})
	register(Part{IDCode: 0x04B29093, Name: "XCVU7P", Family: UP, SLRs: 2, IRLength: 12, ReadbackWords: 13358520})
	register(Part{IDCode: 0x04B71093, Name: "XCVU35P", Family: UP, SLRs: 2, IRLength: 12, ReadbackWords: 14163528})
	register(Part{IDCode: 0x04B73093, Name: "XCVU45P", Family: UP, SLRs: 2, IRLength: 12, ReadbackWords: 14163528})
	register(Part{IDCode: 0x14B31093, Name: "XCVU9P", Family: UP, SLRs: 3, IRLength: 18, ReadbackWords: 20035783})
	register(Part{IDCode: 0x14B49093, Name: "XCVU11P", Family: UP, SLRs: 3, IRLength: 18, ReadbackWords: 21245292})
	register(Part{IDCode: 0x04B79093, Name: "XCVU37P", Family: UP, SLRs: 3, IRLength: 18, ReadbackWords: 21245292})
	register(Part{IDCode: 0x04B7B093, Name: "XCVU47P", Family: UP, SLRs: 3, IRLength: 18, ReadbackWords: 21245292})
	register(Part{IDCode: 0x04B61093, Name: "XCVU57P", Family: UP, SLRs: 3, IRLength: 18, ReadbackWords: 21245292})
	register(Part{IDCode: 0x04B51093, Name: "XCVU13P", Family: UP, SLRs: 4, IRLength: 24, ReadbackWords: 28327056})
	register(Part{IDCode: 0x04BA1093, Name: "XCVU19P", Family: UP, SLRs: 4, IRLength: 24, ReadbackWords: 49775460})
	register(Part{IDCode: 0x04B43093, Name: "XCVU27P", Family: UP, SLRs: 4, IRLength: 24, ReadbackWords: 28327056})
	register(Part{IDCode: 0x04B41093, Name: "XCVU29P", Family: UP, SLRs: 4, IRLength: 24, ReadbackWords: 28327056})

	register(Part{IDCode: 0x04688093, Name: "XCZU1EG", Family: ZP, SLRs: 1, IRLength: 12, ReadbackWords: 742140})
	register(Part{IDCode: 0x14711093, Name: "XCZU2EG", Family: ZP, SLRs: 1, IRLength: 12, ReadbackWords: 1391652})
	register(Part{IDCode: 0x14710093, Name: "XCZU3EG", Family: ZP, SLRs: 1, IRLength: 12, ReadbackWords: 1391652})
	register(Part{IDCode: 0x04721093, Name: "XCZU4EG", Family: ZP, SLRs: 1, IRLength: 12, ReadbackWords: 1948939})
	register(Part{IDCode: 0x04720093, Name: "XCZU5EG", Family: ZP, SLRs: 1, IRLength: 12, ReadbackWords: 1948939})
	register(Part{IDCode: 0x24739093, Name: "XCZU6EG", Family: ZP, SLRs: 1, IRLength: 12, ReadbackWords: 6627180})
	register(Part{IDCode: 0x14730093, Name: "XCZU7EG", Family: ZP, SLRs: 1, IRLength: 12, ReadbackWords: 4827258})
	register(Part{IDCode: 0x24738093, Name: "XCZU9EG", Family: ZP, SLRs: 1, IRLength: 12, ReadbackWords: 6627180})
	register(Part{IDCode: 0x04740093, Name: "XCZU11EG", Family: ZP, SLRs: 1, IRLength: 12, ReadbackWords: 5894712})
	register(Part{IDCode: 0x14750093, Name: "XCZU15EG", Family: ZP, SLRs: 1, IRLength: 12, ReadbackWords: 7174671})
	register(Part{IDCode: 0x14759093, Name: "XCZU17EG", Family: ZP, SLRs: 1, IRLength: 12, ReadbackWords: 9085263})
	register(Part{IDCode: 0x14758093, Name: "XCZU19EG", Family: ZP, SLRs: 1, IRLength: 12, ReadbackWords: 9085263})
	register(Part{IDCode: 0x147E1093, Name: "XCZU21DR", Family: ZP, SLRs: 1, IRLength: 12, ReadbackWords: 8608824})
	register(Part{IDCode: 0x147E5093, Name: "XCZU25DR", Family: ZP, SLRs: 1, IRLength: 12, ReadbackWords: 8608824})
	register(Part{IDCode: 0x147E4093, Name: "XCZU27DR", Family: ZP, SLRs: 1, IRLength: 12, ReadbackWords: 8608824})
	register(Part{IDCode: 0x147E0093, Name: "XCZU28DR", Family: ZP, SLRs: 1, IRLength: 12, ReadbackWords: 8608824})
	register(Part{IDCode: 0x147E2093, Name: "XCZU29DR", Family: ZP, SLRs: 1, IRLength: 12, ReadbackWords: 8608824})
	register(Part{IDCode: 0x147E6093, Name: "XCZU39DR", Family: ZP, SLRs: 1, IRLength: 12, ReadbackWords: 8608824})
	register(Part{IDCode: 0x046D4093, Name: "XCZU42DR", Family: ZP, SLRs: 1, IRLength: 12, ReadbackWords: 5214510})
	register(Part{IDCode: 0x147FD093, Name: "XCZU43DR", Family: ZP, SLRs: 1, IRLength: 12, ReadbackWords: 8608824})
	register(Part{IDCode: 0x147F8093, Name: "XCZU46DR", Family: ZP, SLRs: 1, IRLength: 12, ReadbackWords: 8608824})
	register(Part{IDCode: 0x147FF093, Name: "XCZU47DR", Family: ZP, SLRs: 1, IRLength: 12, ReadbackWords: 8608824})
	register(Part{IDCode: 0x147FB093, Name: "XCZU48DR", Family: ZP, SLRs: 1, IRLength: 12, ReadbackWords: 8608824})
	register(Part{IDCode: 0x147FE093, Name: "XCZU49DR", Family: ZP, SLRs: 1, IRLength: 12, ReadbackWords: 8608824})
	register(Part{IDCode: 0x046D5093, Name: "XCZU63DR", Family: ZP, SLRs: 1, IRLength: 12, ReadbackWords: 5214510})
	register(Part{IDCode: 0x046D6093, Name: "XCZU64DR", Family: ZP, SLRs: 1, IRLength: 12, ReadbackWords: 5214510})
	register(Part{IDCode: 0x046D1093, Name: "XCZU65DR", Family: ZP, SLRs: 1, IRLength: 12, ReadbackWords: 5214510})
	register(Part{IDCode: 0x046D0093, Name: "XCZU67DR", Family: ZP, SLRs: 1, IRLength: 12, ReadbackWords: 5214510})
	register(Part{IDCode: 0x04718093, Name: "XCZU3TEG", Family: ZP, SLRs: 1, IRLength: 12, ReadbackWords: 1301535})
}
