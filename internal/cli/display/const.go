// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package display

const (
	Tool       = "strata"
	BannerBlue = `
          o0o                            o0o
  o0oo0oo0     oo0oo0o  o0oo0o0o  ooo0oo0
 0oo      0o0  oo0      oo    0oo 0oo
  o0oo0o   oo  oo0      oo0oo0o0o  o0oo0o
      0oo  oo  oo0      oo    oo       0oo
 o0oo0o0  0oo  oo0      0o0   oo0 0o0oo0o
`
	BannerGold = `
 o0o
0     oo0oo0o
o0oo  oo0
   0o oo0
o0oo0 oo0    vversion
`
	DocRoot = "https://docs.platform.engineering/strata/en/latest"
)
