package attack

// defaultMagics are the shipped multipliers. Every one of them passes
// Validate for the BishopBits and RookBits index widths.
var defaultMagics = MagicSet{
	Bishop: [64]uint64{
		0x0080810410820200, 0x2010520422401000, 0x88a01411a0081800, 0x1001050002610001,
		0x9000908280000000, 0x20080442a0000001, 0x0221a80045080800, 0x000060200a404000,
		0x0020100894408080, 0x0800084021404602, 0x0040804100298014, 0x5080201060400011,
		0x49000620a0000000, 0x8000001200300000, 0x4000008241100060, 0x0000040920160200,
		0x0042002000240090, 0x000484100420a804, 0x0008000102000910, 0x04880010a8100202,
		0x0004018804040402, 0x0202100108281120, 0xc201162010101042, 0x0240088022010b80,
		0x008301600c240814, 0x000028100e142050, 0x0020880000838110, 0x00410800040204a0,
		0x2012002206008040, 0x004402881900a008, 0x14a80004804c1080, 0xa004814404800f02,
		0x00c0180230101600, 0x000c905200020080, 0x060400080010404a, 0x00040401080c0100,
		0x0020121010140040, 0x0000500080000861, 0x8202090241002020, 0x2008022008002108,
		0x0200402401042000, 0x0002e03210042000, 0x0110040080422400, 0x908404c0584040c0,
		0x1000204202240408, 0x8002002200200200, 0x2002008101081414, 0x0002080021098404,
		0x0060110080680000, 0x1080048108420000, 0x0400184014100000, 0x008081a004012240,
		0x00110080448182a0, 0xa4002000604a4000, 0x0004002811049020, 0x00024a0410a10220,
		0x0808090089013000, 0x0c80800400805800, 0x0001020100061618, 0x1202820040501008,
		0x413010050c100405, 0x0004248204042020, 0x0044004408280110, 0x6010220080600502,
	},
	Rook: [64]uint64{
		0x8a80104000800020, 0x0084020100804000, 0x00800a1000048020, 0xc4100020b1000200,
		0x9400440002080420, 0x0a8004002a801200, 0x0840140c80400100, 0x010000820c412300,
		0x0910800212400820, 0x0008050190002800, 0x0001080800102000, 0x0041080080201001,
		0x020820040800890a, 0x0010800200008440, 0x03200800418a0022, 0x0250060600201100,
		0x4440002400860020, 0x1004402800084000, 0x00041404c0140004, 0x5000400908001400,
		0x0000020841000830, 0x00830a0101000500, 0x014040a002804040, 0x4400101008854220,
		0xe008025220022600, 0x0440244008603000, 0x0008024004009000, 0x0801009002100002,
		0x0400200200010811, 0x3204020044012400, 0x0002100088200100, 0x020800a004091041,
		0x000210c224200241, 0x00200a0c02040080, 0x004d8028104c0800, 0x813c0a0002900012,
		0x0008104200208020, 0x240400a000a04080, 0x0802199100100042, 0x062c4c0020100280,
		0x0020104280800820, 0x20c8010080a80200, 0x1114084080464008, 0x2000025430001805,
		0x1404c4a100110008, 0x0000008400012008, 0x3045140080022010, 0x8040028410080100,
		0x0220200310204820, 0x0200082244048202, 0x00090984c0208022, 0x8000110120040900,
		0x9000402400080084, 0x2402100100038020, 0x0098400600008028, 0x000111000040200c,
		0x0102402208108102, 0x0440041482204101, 0x4004402000040811, 0x804a000810402002,
		0x0008000209020401, 0x0440341108009002, 0x0000008825084204, 0x2084002112428402,
	},
}

// DefaultMagics returns a copy of the shipped multiplier set.
func DefaultMagics() *MagicSet {
	ms := defaultMagics
	return &ms
}
