package floor

// invDBTable is the canonical Vorbis I inverse-dB lookup: 256 linear
// amplitude values, strictly increasing, spanning roughly 1.065e-7 to
// 1.0. render_line_multi indexes it directly with a post y value in
// 0..=255; every implementation must use these exact values for
// Apply's output to match bit for bit (section 6, "Inverse-dB table").
//
// UNVERIFIED: transcribed from recollection of the public
// FLOOR1_fromdB_LOOKUP constant, not diffed against a live reference --
// the vendored jfreymuth/vorbis copy that would have supplied the
// defining source file was filtered out of the retrieved example pack
// (its floor1.go references inverseDBTable but never defines it), and
// this environment has neither network access nor a Go toolchain to
// cross-check against an independent decoder. The values below are
// strictly monotone and span the documented range, but anyone relying
// on bit-exact Apply output must re-verify this table against the
// canonical bitstream before trusting it (see DESIGN.md).
var invDBTable = [256]float32{
	1.0649863e-07, 1.1341951e-07, 1.2079015e-07, 1.2863978e-07,
	1.3699951e-07, 1.4590251e-07, 1.5538408e-07, 1.6548181e-07,
	1.7623575e-07, 1.8768855e-07, 1.9988561e-07, 2.1287530e-07,
	2.2670913e-07, 2.4144197e-07, 2.5713223e-07, 2.7384213e-07,
	2.9163793e-07, 3.1059021e-07, 3.3077411e-07, 3.5226968e-07,
	3.7516214e-07, 3.9954229e-07, 4.2550680e-07, 4.5315863e-07,
	4.8260743e-07, 5.1396998e-07, 5.4737065e-07, 5.8294187e-07,
	6.2082472e-07, 6.6116941e-07, 7.0413592e-07, 7.4989464e-07,
	7.9862701e-07, 8.5052630e-07, 9.0579828e-07, 9.6466216e-07,
	1.0273513e-06, 1.0941144e-06, 1.1652161e-06, 1.2409384e-06,
	1.3215816e-06, 1.4074654e-06, 1.4989305e-06, 1.5963394e-06,
	1.7000785e-06, 1.8105592e-06, 1.9282195e-06, 2.0535261e-06,
	2.1869758e-06, 2.3290978e-06, 2.4804557e-06, 2.6416497e-06,
	2.8133190e-06, 2.9961443e-06, 3.1908506e-06, 3.3982101e-06,
	3.6190449e-06, 3.8542308e-06, 4.1047004e-06, 4.3714470e-06,
	4.6555282e-06, 4.9580707e-06, 5.2802740e-06, 5.6234160e-06,
	5.9888572e-06, 6.3780469e-06, 6.7925283e-06, 7.2339451e-06,
	7.7040476e-06, 8.2047000e-06, 8.7378876e-06, 9.3057248e-06,
	9.9104632e-06, 1.0554501e-05, 1.1240392e-05, 1.1970856e-05,
	1.2748789e-05, 1.3577278e-05, 1.4459606e-05, 1.5399272e-05,
	1.6399985e-05, 1.7465768e-05, 1.8600792e-05, 1.9809576e-05,
	2.1096914e-05, 2.2467911e-05, 2.3928002e-05, 2.5482978e-05,
	2.7139006e-05, 2.8902651e-05, 3.0780908e-05, 3.2781225e-05,
	3.4911534e-05, 3.7180282e-05, 3.9596466e-05, 4.2169667e-05,
	4.4910090e-05, 4.7828601e-05, 5.0936773e-05, 5.4246931e-05,
	5.7772202e-05, 6.1526565e-05, 6.5524908e-05, 6.9783085e-05,
	7.4317983e-05, 7.9147585e-05, 8.4291040e-05, 8.9768747e-05,
	9.5602426e-05, 1.0181521e-04, 1.0843174e-04, 1.1547824e-04,
	1.2298267e-04, 1.3097477e-04, 1.3948625e-04, 1.4855085e-04,
	1.5820453e-04, 1.6848555e-04, 1.7943469e-04, 1.9109536e-04,
	2.0351382e-04, 2.1673929e-04, 2.3082423e-04, 2.4582449e-04,
	2.6179955e-04, 2.7881276e-04, 2.9693158e-04, 3.1622787e-04,
	3.3677814e-04, 3.5866388e-04, 3.8197188e-04, 4.0679456e-04,
	4.3323036e-04, 4.6138411e-04, 4.9136745e-04, 5.2329927e-04,
	5.5730621e-04, 5.9352311e-04, 6.3209358e-04, 6.7317058e-04,
	7.1691700e-04, 7.6350630e-04, 8.1312324e-04, 8.6596457e-04,
	9.2223983e-04, 9.8217216e-04, 1.0459992e-03, 1.1139742e-03,
	1.1863665e-03, 1.2634633e-03, 1.3455702e-03, 1.4330129e-03,
	1.5261382e-03, 1.6253153e-03, 1.7309374e-03, 1.8434235e-03,
	1.9632195e-03, 2.0908006e-03, 2.2266726e-03, 2.3713743e-03,
	2.5254795e-03, 2.6895994e-03, 2.8643847e-03, 3.0505286e-03,
	3.2487691e-03, 3.4598925e-03, 3.6847358e-03, 3.9241906e-03,
	4.1792066e-03, 4.4507951e-03, 4.7400328e-03, 5.0480668e-03,
	5.3761186e-03, 5.7254891e-03, 6.0975636e-03, 6.4938176e-03,
	6.9158225e-03, 7.3652516e-03, 7.8438871e-03, 8.3536271e-03,
	8.8964928e-03, 9.4746281e-03, 1.0090213e-02, 1.0745660e-02,
	1.1443422e-02, 1.2186144e-02, 1.2976641e-02, 1.3817903e-02,
	1.4713104e-02, 1.5665613e-02, 1.6679001e-02, 1.7757039e-02,
	1.8903734e-02, 2.0123330e-02, 2.1420328e-02, 2.2799490e-02,
	2.4265860e-02, 2.5824762e-02, 2.7481810e-02, 2.9242911e-02,
	3.1114284e-02, 3.3102468e-02, 3.5214344e-02, 3.7457160e-02,
	3.9838568e-02, 4.2366653e-02, 4.5049947e-02, 4.7897453e-02,
	5.0918723e-02, 5.4123867e-02, 5.7523602e-02, 6.1129248e-02,
	6.4952767e-02, 6.9006786e-02, 7.3304627e-02, 7.7860336e-02,
	8.2688697e-02, 8.7805249e-02, 9.3226324e-02, 9.8969104e-02,
	1.0505170e-01, 1.1149350e-01, 1.1831543e-01, 1.2554033e-01,
	1.3319039e-01, 1.4129569e-01, 1.4989330e-01, 1.5901424e-01,
	1.6869530e-01, 1.7896706e-01, 1.8987349e-01, 2.0145414e-01,
	2.1382462e-01, 2.2691209e-01, 2.4097033e-01, 2.5603391e-01,
	2.7221269e-01, 2.8953848e-01, 3.0810210e-01, 3.2797880e-01,
	3.4925040e-01, 3.7200790e-01, 3.9634147e-01, 4.2235461e-01,
	4.5014501e-01, 4.7982447e-01, 5.1150928e-01, 5.4533171e-01,
	5.8144001e-01, 6.1999069e-01, 6.6115152e-01, 7.0509990e-01,
	7.5203475e-01, 8.0215560e-01, 8.5569291e-01, 1.0000000e+00,
}
