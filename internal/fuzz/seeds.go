package fuzztests

import "testing"

const maxFuzzInput = 1 << 16 // 64 KiB

var seeds = []string{
	"",
	"fn f() {}\n",
	"#[c0nst] fn f() {}\n",
	"#[c0nst] trait T { fn m(&self); }\n",
	"#[c0nst] impl<U: [c0nst] Tr> T for S<U> { fn m(&self) {} }\n",
	"#[c0nst] fn f<T: ~const Tr + [c0nst] core::marker::Destruct>() where T: [c0nst] Clone {}\n",
	"#[c0nst] #[derive(Clone)] struct S<T: [c0nst] Tr> { t: T }\n",
	"#[c0nst] mod m { #[c0nst] fn g() {} }\n",
	"#[c0nst] mod m;\n",
	"#[adapt] fn f<T: for<'a> [c0nst] Fn(&'a u8)>() {}\n",
	"/// doc\n#[c0nst] pub(crate) unsafe fn g() -> u8 { 0 }\n",
	"const fn f<T: [const] Tr>() {}\n",
	"fn f() { \"unterminated\n",
	"fn f() { ( ] }\n",
	"#[c0nst] fn f<T: [c0nst>() {}\n",
	"r#\"raw\"# b'x' 'a 1.5e3 0x_ff\n",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range seeds {
		f.Add([]byte(s))
	}
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		input = input[:maxFuzzInput]
	}
	return append([]byte(nil), input...)
}
