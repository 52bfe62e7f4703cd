// This file is part of Gopherx86.
//
// Gopherx86 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherx86 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherx86.  If not, see <https://www.gnu.org/licenses/>.

package mnemonics

// Precomputed list of mnemonics. Do not edit.

// List of mnemonics, sorted alphabetically after Invalid.
const (
	Invalid Mnemonic = iota
	Aaa
	Aad
	Aam
	Aas
	Adc
	Adcx
	Add
	Addpd
	Addps
	Addsd
	Addss
	Addsubpd
	Addsubps
	Adox
	Aesdec
	Aesdeclast
	Aesenc
	Aesenclast
	Aesimc
	Aeskeygenassist
	And
	Andn
	Andnpd
	Andnps
	Andpd
	Andps
	Arpl
	Bextr
	Blcfill
	Blci
	Blcic
	Blcmsk
	Blcs
	Blendpd
	Blendps
	Blendvpd
	Blendvps
	Blsfill
	Blsi
	Blsic
	Blsmsk
	Blsr
	Bound
	Bsf
	Bsr
	Bswap
	Bt
	Btc
	Btr
	Bts
	Bzhi
	Call
	Callf
	Cbw
	Cdq
	Cdqe
	Clac
	Clc
	Cld
	Clflush
	Cli
	Clts
	Cmc
	Cmova
	Cmovae
	Cmovb
	Cmovbe
	Cmove
	Cmovg
	Cmovge
	Cmovl
	Cmovle
	Cmovne
	Cmovno
	Cmovnp
	Cmovns
	Cmovo
	Cmovp
	Cmovs
	Cmp
	Cmppd
	Cmpps
	Cmpsb
	Cmpsd
	Cmpsq
	Cmpss
	Cmpsw
	Cmpxchg
	Cmpxchg16b
	Cmpxchg8b
	Comisd
	Comiss
	Cpuid
	Cqo
	Crc32
	Cvtdq2pd
	Cvtdq2ps
	Cvtpd2dq
	Cvtpd2pi
	Cvtpd2ps
	Cvtpi2pd
	Cvtpi2ps
	Cvtps2dq
	Cvtps2pd
	Cvtps2pi
	Cvtsd2si
	Cvtsd2ss
	Cvtsi2sd
	Cvtsi2ss
	Cvtss2sd
	Cvtss2si
	Cvttpd2dq
	Cvttpd2pi
	Cvttps2dq
	Cvttps2pi
	Cvttsd2si
	Cvttss2si
	Cwd
	Cwde
	Daa
	Das
	Dec
	Div
	Divpd
	Divps
	Divsd
	Divss
	Dppd
	Dpps
	Emms
	Endbr32
	Endbr64
	Enter
	Extractps
	F2xm1
	Fabs
	Fadd
	Faddp
	Fbld
	Fbstp
	Fchs
	Fcmovb
	Fcmovbe
	Fcmove
	Fcmovnb
	Fcmovnbe
	Fcmovne
	Fcmovnu
	Fcmovu
	Fcom
	Fcomi
	Fcomip
	Fcomp
	Fcompp
	Fcos
	Fdecstp
	Fdiv
	Fdivp
	Fdivr
	Fdivrp
	Ffree
	Ffreep
	Fiadd
	Ficom
	Ficomp
	Fidiv
	Fidivr
	Fild
	Fimul
	Fincstp
	Fist
	Fistp
	Fisttp
	Fisub
	Fisubr
	Fld
	Fld1
	Fldcw
	Fldenv
	Fldl2e
	Fldl2t
	Fldlg2
	Fldln2
	Fldpi
	Fldz
	Fmul
	Fmulp
	Fnclex
	Fninit
	Fnop
	Fnsave
	Fnstcw
	Fnstenv
	Fnstsw
	Fpatan
	Fprem
	Fprem1
	Fptan
	Frndint
	Frstor
	Fscale
	Fsin
	Fsincos
	Fsqrt
	Fst
	Fstp
	Fsub
	Fsubp
	Fsubr
	Fsubrp
	Ftst
	Fucom
	Fucomi
	Fucomip
	Fucomp
	Fucompp
	Fxam
	Fxch
	Fxrstor
	Fxsave
	Fxtract
	Fyl2x
	Fyl2xp1
	Getsec
	Haddpd
	Haddps
	Hlt
	Hsubpd
	Hsubps
	Idiv
	Imul
	In
	Inc
	Insb
	Insd
	Insertps
	Insw
	Int
	Int1
	Int3
	Into
	Invd
	Invlpg
	Iret
	Iretd
	Iretq
	Ja
	Jae
	Jb
	Jbe
	Jcxz
	Je
	Jecxz
	Jg
	Jge
	Jl
	Jle
	Jmp
	Jmpf
	Jne
	Jno
	Jnp
	Jns
	Jo
	Jp
	Jrcxz
	Js
	Kandw
	Kmovw
	Knotw
	Kortestw
	Korw
	Kxorw
	Lahf
	Lar
	Lddqu
	Ldmxcsr
	Lds
	Lea
	Leave
	Les
	Lfence
	Lfs
	Lgdt
	Lgs
	Lidt
	Lldt
	Lmsw
	Lodsb
	Lodsd
	Lodsq
	Lodsw
	Loop
	Loope
	Loopne
	Lsl
	Lss
	Ltr
	Lwpins
	Lwpval
	Lzcnt
	Maskmovdqu
	Maskmovq
	Maxpd
	Maxps
	Maxsd
	Maxss
	Mfence
	Minpd
	Minps
	Minsd
	Minss
	Monitor
	Mov
	Movapd
	Movaps
	Movbe
	Movd
	Movddup
	Movdq2q
	Movdqa
	Movdqu
	Movhlps
	Movhpd
	Movhps
	Movlhps
	Movlpd
	Movlps
	Movmskpd
	Movmskps
	Movntdq
	Movntdqa
	Movnti
	Movntpd
	Movntps
	Movntq
	Movq
	Movq2dq
	Movsb
	Movsd
	Movshdup
	Movsldup
	Movsq
	Movss
	Movsw
	Movsx
	Movsxd
	Movupd
	Movups
	Movzx
	Mpsadbw
	Mul
	Mulpd
	Mulps
	Mulsd
	Mulss
	Mulx
	Mwait
	Neg
	Nop
	Not
	Or
	Orpd
	Orps
	Out
	Outsb
	Outsd
	Outsw
	Pabsb
	Pabsd
	Pabsw
	Packssdw
	Packsswb
	Packusdw
	Packuswb
	Paddb
	Paddd
	Paddq
	Paddsb
	Paddsw
	Paddusb
	Paddusw
	Paddw
	Palignr
	Pand
	Pandn
	Pause
	Pavgb
	Pavgw
	Pblendvb
	Pblendw
	Pclmulqdq
	Pcmpeqb
	Pcmpeqd
	Pcmpeqq
	Pcmpeqw
	Pcmpestri
	Pcmpestrm
	Pcmpgtb
	Pcmpgtd
	Pcmpgtq
	Pcmpgtw
	Pcmpistri
	Pcmpistrm
	Pdep
	Pext
	Pextrb
	Pextrd
	Pextrq
	Pextrw
	Phaddd
	Phaddsw
	Phaddw
	Phminposuw
	Phsubd
	Phsubsw
	Phsubw
	Pinsrb
	Pinsrd
	Pinsrq
	Pinsrw
	Pmaddubsw
	Pmaddwd
	Pmaxsb
	Pmaxsd
	Pmaxsw
	Pmaxub
	Pmaxud
	Pmaxuw
	Pminsb
	Pminsd
	Pminsw
	Pminub
	Pminud
	Pminuw
	Pmovmskb
	Pmovsxbd
	Pmovsxbq
	Pmovsxbw
	Pmovsxdq
	Pmovsxwd
	Pmovsxwq
	Pmovzxbd
	Pmovzxbq
	Pmovzxbw
	Pmovzxdq
	Pmovzxwd
	Pmovzxwq
	Pmuldq
	Pmulhrsw
	Pmulhuw
	Pmulhw
	Pmulld
	Pmullw
	Pmuludq
	Pop
	Popa
	Popad
	Popcnt
	Popf
	Popfd
	Popfq
	Por
	Prefetchnta
	Prefetcht0
	Prefetcht1
	Prefetcht2
	Prefetchw
	Psadbw
	Pshufb
	Pshufd
	Pshufhw
	Pshuflw
	Pshufw
	Psignb
	Psignd
	Psignw
	Pslld
	Pslldq
	Psllq
	Psllw
	Psrad
	Psraw
	Psrld
	Psrldq
	Psrlq
	Psrlw
	Psubb
	Psubd
	Psubq
	Psubsb
	Psubsw
	Psubusb
	Psubusw
	Psubw
	Ptest
	Punpckhbw
	Punpckhdq
	Punpckhqdq
	Punpckhwd
	Punpcklbw
	Punpckldq
	Punpcklqdq
	Punpcklwd
	Push
	Pusha
	Pushad
	Pushf
	Pushfd
	Pushfq
	Pxor
	Rcl
	Rcpps
	Rcpss
	Rcr
	Rdfsbase
	Rdgsbase
	Rdmsr
	Rdpid
	Rdpmc
	Rdrand
	Rdseed
	Rdtsc
	Rdtscp
	Ret
	Retf
	Rol
	Ror
	Rorx
	Roundpd
	Roundps
	Roundsd
	Roundss
	Rsm
	Rsqrtps
	Rsqrtss
	Sahf
	Sal
	Salc
	Sar
	Sarx
	Sbb
	Scasb
	Scasd
	Scasq
	Scasw
	Seta
	Setae
	Setb
	Setbe
	Sete
	Setg
	Setge
	Setl
	Setle
	Setne
	Setno
	Setnp
	Setns
	Seto
	Setp
	Sets
	Sfence
	Sgdt
	Shl
	Shld
	Shlx
	Shr
	Shrd
	Shrx
	Shufpd
	Shufps
	Sidt
	Sldt
	Smsw
	Sqrtpd
	Sqrtps
	Sqrtsd
	Sqrtss
	Stac
	Stc
	Std
	Sti
	Stmxcsr
	Stosb
	Stosd
	Stosq
	Stosw
	Str
	Sub
	Subpd
	Subps
	Subsd
	Subss
	Swapgs
	Syscall
	Sysenter
	Sysexit
	Sysret
	Sysretq
	T1mskc
	Test
	Tzcnt
	Tzmsk
	Ucomisd
	Ucomiss
	Ud0
	Ud1
	Ud2
	Unpckhpd
	Unpckhps
	Unpcklpd
	Unpcklps
	Vaddpd
	Vaddps
	Vaddsd
	Vaddss
	Vaddsubpd
	Vaddsubps
	Vaesdec
	Vaesdeclast
	Vaesenc
	Vaesenclast
	Vaesimc
	Vaeskeygenassist
	Valignd
	Valignq
	Vandnpd
	Vandnps
	Vandpd
	Vandps
	Vblendmpd
	Vblendmps
	Vblendpd
	Vblendps
	Vblendvpd
	Vblendvps
	Vbroadcastf128
	Vbroadcastf32x4
	Vbroadcastf64x2
	Vbroadcasti128
	Vbroadcasti32x4
	Vbroadcasti64x2
	Vbroadcastsd
	Vbroadcastss
	Vcmppd
	Vcmpps
	Vcmpsd
	Vcmpss
	Vcomisd
	Vcomiss
	Vcvtdq2pd
	Vcvtdq2ps
	Vcvtpd2dq
	Vcvtpd2ps
	Vcvtph2ps
	Vcvtps2dq
	Vcvtps2pd
	Vcvtps2ph
	Vcvtsd2si
	Vcvtsd2ss
	Vcvtsi2sd
	Vcvtsi2ss
	Vcvtss2sd
	Vcvtss2si
	Vcvttpd2dq
	Vcvttps2dq
	Vcvttsd2si
	Vcvttss2si
	Vdbpsadbw
	Vdivpd
	Vdivps
	Vdivsd
	Vdivss
	Vdppd
	Vdpps
	Verr
	Verw
	Vextractf128
	Vextractf32x4
	Vextractf32x8
	Vextractf64x2
	Vextractf64x4
	Vextracti128
	Vextracti32x4
	Vextracti32x8
	Vextracti64x2
	Vextracti64x4
	Vextractps
	Vfmadd132pd
	Vfmadd132ps
	Vfmadd132sd
	Vfmadd132ss
	Vfmadd213pd
	Vfmadd213ps
	Vfmadd213sd
	Vfmadd213ss
	Vfmadd231pd
	Vfmadd231ps
	Vfmadd231sd
	Vfmadd231ss
	Vfmaddsub132pd
	Vfmaddsub132ps
	Vfmaddsub213pd
	Vfmaddsub213ps
	Vfmaddsub231pd
	Vfmaddsub231ps
	Vfmsub132pd
	Vfmsub132ps
	Vfmsub132sd
	Vfmsub132ss
	Vfmsub213pd
	Vfmsub213ps
	Vfmsub213sd
	Vfmsub213ss
	Vfmsub231pd
	Vfmsub231ps
	Vfmsub231sd
	Vfmsub231ss
	Vfmsubadd132pd
	Vfmsubadd132ps
	Vfmsubadd213pd
	Vfmsubadd213ps
	Vfmsubadd231pd
	Vfmsubadd231ps
	Vfnmadd132pd
	Vfnmadd132ps
	Vfnmadd132sd
	Vfnmadd132ss
	Vfnmadd213pd
	Vfnmadd213ps
	Vfnmadd213sd
	Vfnmadd213ss
	Vfnmadd231pd
	Vfnmadd231ps
	Vfnmadd231sd
	Vfnmadd231ss
	Vfnmsub132pd
	Vfnmsub132ps
	Vfnmsub132sd
	Vfnmsub132ss
	Vfnmsub213pd
	Vfnmsub213ps
	Vfnmsub213sd
	Vfnmsub213ss
	Vfnmsub231pd
	Vfnmsub231ps
	Vfnmsub231sd
	Vfnmsub231ss
	Vfrczpd
	Vfrczps
	Vgatherdpd
	Vgatherdps
	Vgatherqpd
	Vgatherqps
	Vhaddpd
	Vhaddps
	Vhsubpd
	Vhsubps
	Vinsertf128
	Vinsertf32x4
	Vinsertf32x8
	Vinsertf64x2
	Vinsertf64x4
	Vinserti128
	Vinserti32x4
	Vinserti32x8
	Vinserti64x2
	Vinserti64x4
	Vinsertps
	Vlddqu
	Vldmxcsr
	Vmaskmovdqu
	Vmaskmovpd
	Vmaskmovps
	Vmaxpd
	Vmaxps
	Vmaxsd
	Vmaxss
	Vmcall
	Vminpd
	Vminps
	Vminsd
	Vminss
	Vmlaunch
	Vmovapd
	Vmovaps
	Vmovd
	Vmovddup
	Vmovdqa
	Vmovdqa32
	Vmovdqa64
	Vmovdqu
	Vmovdqu16
	Vmovdqu32
	Vmovdqu64
	Vmovdqu8
	Vmovhlps
	Vmovhpd
	Vmovhps
	Vmovlhps
	Vmovlpd
	Vmovlps
	Vmovmskpd
	Vmovmskps
	Vmovntdq
	Vmovntdqa
	Vmovntpd
	Vmovntps
	Vmovq
	Vmovsd
	Vmovshdup
	Vmovsldup
	Vmovss
	Vmovupd
	Vmovups
	Vmpsadbw
	Vmresume
	Vmulpd
	Vmulps
	Vmulsd
	Vmulss
	Vmxoff
	Vorpd
	Vorps
	Vpabsb
	Vpabsd
	Vpabsq
	Vpabsw
	Vpackssdw
	Vpacksswb
	Vpackusdw
	Vpackuswb
	Vpaddb
	Vpaddd
	Vpaddq
	Vpaddsb
	Vpaddsw
	Vpaddusb
	Vpaddusw
	Vpaddw
	Vpalignr
	Vpand
	Vpandd
	Vpandn
	Vpandnd
	Vpandnq
	Vpandq
	Vpavgb
	Vpavgw
	Vpblendd
	Vpblendmb
	Vpblendmd
	Vpblendmq
	Vpblendmw
	Vpblendvb
	Vpblendw
	Vpbroadcastb
	Vpbroadcastd
	Vpbroadcastq
	Vpbroadcastw
	Vpclmulqdq
	Vpcmov
	Vpcmpb
	Vpcmpd
	Vpcmpeqb
	Vpcmpeqd
	Vpcmpeqq
	Vpcmpeqw
	Vpcmpestri
	Vpcmpestrm
	Vpcmpgtb
	Vpcmpgtd
	Vpcmpgtq
	Vpcmpgtw
	Vpcmpistri
	Vpcmpistrm
	Vpcmpq
	Vpcmpub
	Vpcmpud
	Vpcmpuq
	Vpcmpuw
	Vpcmpw
	Vpcomb
	Vpconflictd
	Vpconflictq
	Vperm2f128
	Vperm2i128
	Vpermd
	Vpermi2d
	Vpermi2pd
	Vpermi2ps
	Vpermi2q
	Vpermilpd
	Vpermilps
	Vpermpd
	Vpermps
	Vpermq
	Vpermt2d
	Vpermt2pd
	Vpermt2ps
	Vpermt2q
	Vpextrb
	Vpextrd
	Vpextrq
	Vpextrw
	Vpgatherdd
	Vpgatherdq
	Vpgatherqd
	Vpgatherqq
	Vphaddd
	Vphaddsw
	Vphaddw
	Vphminposuw
	Vphsubd
	Vphsubsw
	Vphsubw
	Vpinsrb
	Vpinsrd
	Vpinsrq
	Vpinsrw
	Vplzcntd
	Vplzcntq
	Vpmaddubsw
	Vpmaddwd
	Vpmaskmovd
	Vpmaskmovq
	Vpmaxsb
	Vpmaxsd
	Vpmaxsq
	Vpmaxsw
	Vpmaxub
	Vpmaxud
	Vpmaxuq
	Vpmaxuw
	Vpminsb
	Vpminsd
	Vpminsq
	Vpminsw
	Vpminub
	Vpminud
	Vpminuq
	Vpminuw
	Vpmovb2m
	Vpmovd2m
	Vpmovdb
	Vpmovdw
	Vpmovm2b
	Vpmovm2d
	Vpmovm2q
	Vpmovm2w
	Vpmovmskb
	Vpmovq2m
	Vpmovqb
	Vpmovqd
	Vpmovqw
	Vpmovsxbd
	Vpmovsxbq
	Vpmovsxbw
	Vpmovsxdq
	Vpmovsxwd
	Vpmovsxwq
	Vpmovw2m
	Vpmovwb
	Vpmovzxbd
	Vpmovzxbq
	Vpmovzxbw
	Vpmovzxdq
	Vpmovzxwd
	Vpmovzxwq
	Vpmuldq
	Vpmulhrsw
	Vpmulhuw
	Vpmulhw
	Vpmulld
	Vpmullq
	Vpmullw
	Vpmuludq
	Vpor
	Vpord
	Vporq
	Vpperm
	Vprold
	Vprolq
	Vprord
	Vprorq
	Vprotb
	Vprotd
	Vpsadbw
	Vpscatterdd
	Vpscatterdq
	Vpscatterqd
	Vpscatterqq
	Vpshufb
	Vpshufd
	Vpshufhw
	Vpshuflw
	Vpsignb
	Vpsignd
	Vpsignw
	Vpslld
	Vpslldq
	Vpsllq
	Vpsllvd
	Vpsllvq
	Vpsllw
	Vpsrad
	Vpsraq
	Vpsravd
	Vpsravq
	Vpsraw
	Vpsrld
	Vpsrldq
	Vpsrlq
	Vpsrlvd
	Vpsrlvq
	Vpsrlw
	Vpsubb
	Vpsubd
	Vpsubq
	Vpsubsb
	Vpsubsw
	Vpsubusb
	Vpsubusw
	Vpsubw
	Vpternlogd
	Vpternlogq
	Vptest
	Vptestmb
	Vptestmd
	Vptestmq
	Vptestmw
	Vptestnmb
	Vptestnmd
	Vptestnmq
	Vptestnmw
	Vpunpckhbw
	Vpunpckhdq
	Vpunpckhqdq
	Vpunpckhwd
	Vpunpcklbw
	Vpunpckldq
	Vpunpcklqdq
	Vpunpcklwd
	Vpxor
	Vpxord
	Vpxorq
	Vrcp14pd
	Vrcp14ps
	Vrcpps
	Vrcpss
	Vrndscalepd
	Vrndscaleps
	Vrndscalesd
	Vrndscaless
	Vroundpd
	Vroundps
	Vroundsd
	Vroundss
	Vrsqrt14pd
	Vrsqrt14ps
	Vrsqrtps
	Vrsqrtss
	Vscatterdpd
	Vscatterdps
	Vscatterqpd
	Vscatterqps
	Vshuff32x4
	Vshuff64x2
	Vshufi32x4
	Vshufi64x2
	Vshufpd
	Vshufps
	Vsqrtpd
	Vsqrtps
	Vsqrtsd
	Vsqrtss
	Vstmxcsr
	Vsubpd
	Vsubps
	Vsubsd
	Vsubss
	Vtestpd
	Vtestps
	Vucomisd
	Vucomiss
	Vunpckhpd
	Vunpckhps
	Vunpcklpd
	Vunpcklps
	Vxorpd
	Vxorps
	Vzeroall
	Vzeroupper
	Wait
	Wbinvd
	Wrfsbase
	Wrgsbase
	Wrmsr
	Xabort
	Xadd
	Xbegin
	Xchg
	Xend
	Xgetbv
	Xlatb
	Xor
	Xorpd
	Xorps
	Xrstor
	Xsave
	Xsaveopt
	Xsetbv
	Xtest
)

// NumMnemonics is the number of entries in the list of mnemonics.
const NumMnemonics = 1115

var names = [NumMnemonics]string{
	Invalid: "invalid",
	Aaa: "aaa",
	Aad: "aad",
	Aam: "aam",
	Aas: "aas",
	Adc: "adc",
	Adcx: "adcx",
	Add: "add",
	Addpd: "addpd",
	Addps: "addps",
	Addsd: "addsd",
	Addss: "addss",
	Addsubpd: "addsubpd",
	Addsubps: "addsubps",
	Adox: "adox",
	Aesdec: "aesdec",
	Aesdeclast: "aesdeclast",
	Aesenc: "aesenc",
	Aesenclast: "aesenclast",
	Aesimc: "aesimc",
	Aeskeygenassist: "aeskeygenassist",
	And: "and",
	Andn: "andn",
	Andnpd: "andnpd",
	Andnps: "andnps",
	Andpd: "andpd",
	Andps: "andps",
	Arpl: "arpl",
	Bextr: "bextr",
	Blcfill: "blcfill",
	Blci: "blci",
	Blcic: "blcic",
	Blcmsk: "blcmsk",
	Blcs: "blcs",
	Blendpd: "blendpd",
	Blendps: "blendps",
	Blendvpd: "blendvpd",
	Blendvps: "blendvps",
	Blsfill: "blsfill",
	Blsi: "blsi",
	Blsic: "blsic",
	Blsmsk: "blsmsk",
	Blsr: "blsr",
	Bound: "bound",
	Bsf: "bsf",
	Bsr: "bsr",
	Bswap: "bswap",
	Bt: "bt",
	Btc: "btc",
	Btr: "btr",
	Bts: "bts",
	Bzhi: "bzhi",
	Call: "call",
	Callf: "callf",
	Cbw: "cbw",
	Cdq: "cdq",
	Cdqe: "cdqe",
	Clac: "clac",
	Clc: "clc",
	Cld: "cld",
	Clflush: "clflush",
	Cli: "cli",
	Clts: "clts",
	Cmc: "cmc",
	Cmova: "cmova",
	Cmovae: "cmovae",
	Cmovb: "cmovb",
	Cmovbe: "cmovbe",
	Cmove: "cmove",
	Cmovg: "cmovg",
	Cmovge: "cmovge",
	Cmovl: "cmovl",
	Cmovle: "cmovle",
	Cmovne: "cmovne",
	Cmovno: "cmovno",
	Cmovnp: "cmovnp",
	Cmovns: "cmovns",
	Cmovo: "cmovo",
	Cmovp: "cmovp",
	Cmovs: "cmovs",
	Cmp: "cmp",
	Cmppd: "cmppd",
	Cmpps: "cmpps",
	Cmpsb: "cmpsb",
	Cmpsd: "cmpsd",
	Cmpsq: "cmpsq",
	Cmpss: "cmpss",
	Cmpsw: "cmpsw",
	Cmpxchg: "cmpxchg",
	Cmpxchg16b: "cmpxchg16b",
	Cmpxchg8b: "cmpxchg8b",
	Comisd: "comisd",
	Comiss: "comiss",
	Cpuid: "cpuid",
	Cqo: "cqo",
	Crc32: "crc32",
	Cvtdq2pd: "cvtdq2pd",
	Cvtdq2ps: "cvtdq2ps",
	Cvtpd2dq: "cvtpd2dq",
	Cvtpd2pi: "cvtpd2pi",
	Cvtpd2ps: "cvtpd2ps",
	Cvtpi2pd: "cvtpi2pd",
	Cvtpi2ps: "cvtpi2ps",
	Cvtps2dq: "cvtps2dq",
	Cvtps2pd: "cvtps2pd",
	Cvtps2pi: "cvtps2pi",
	Cvtsd2si: "cvtsd2si",
	Cvtsd2ss: "cvtsd2ss",
	Cvtsi2sd: "cvtsi2sd",
	Cvtsi2ss: "cvtsi2ss",
	Cvtss2sd: "cvtss2sd",
	Cvtss2si: "cvtss2si",
	Cvttpd2dq: "cvttpd2dq",
	Cvttpd2pi: "cvttpd2pi",
	Cvttps2dq: "cvttps2dq",
	Cvttps2pi: "cvttps2pi",
	Cvttsd2si: "cvttsd2si",
	Cvttss2si: "cvttss2si",
	Cwd: "cwd",
	Cwde: "cwde",
	Daa: "daa",
	Das: "das",
	Dec: "dec",
	Div: "div",
	Divpd: "divpd",
	Divps: "divps",
	Divsd: "divsd",
	Divss: "divss",
	Dppd: "dppd",
	Dpps: "dpps",
	Emms: "emms",
	Endbr32: "endbr32",
	Endbr64: "endbr64",
	Enter: "enter",
	Extractps: "extractps",
	F2xm1: "f2xm1",
	Fabs: "fabs",
	Fadd: "fadd",
	Faddp: "faddp",
	Fbld: "fbld",
	Fbstp: "fbstp",
	Fchs: "fchs",
	Fcmovb: "fcmovb",
	Fcmovbe: "fcmovbe",
	Fcmove: "fcmove",
	Fcmovnb: "fcmovnb",
	Fcmovnbe: "fcmovnbe",
	Fcmovne: "fcmovne",
	Fcmovnu: "fcmovnu",
	Fcmovu: "fcmovu",
	Fcom: "fcom",
	Fcomi: "fcomi",
	Fcomip: "fcomip",
	Fcomp: "fcomp",
	Fcompp: "fcompp",
	Fcos: "fcos",
	Fdecstp: "fdecstp",
	Fdiv: "fdiv",
	Fdivp: "fdivp",
	Fdivr: "fdivr",
	Fdivrp: "fdivrp",
	Ffree: "ffree",
	Ffreep: "ffreep",
	Fiadd: "fiadd",
	Ficom: "ficom",
	Ficomp: "ficomp",
	Fidiv: "fidiv",
	Fidivr: "fidivr",
	Fild: "fild",
	Fimul: "fimul",
	Fincstp: "fincstp",
	Fist: "fist",
	Fistp: "fistp",
	Fisttp: "fisttp",
	Fisub: "fisub",
	Fisubr: "fisubr",
	Fld: "fld",
	Fld1: "fld1",
	Fldcw: "fldcw",
	Fldenv: "fldenv",
	Fldl2e: "fldl2e",
	Fldl2t: "fldl2t",
	Fldlg2: "fldlg2",
	Fldln2: "fldln2",
	Fldpi: "fldpi",
	Fldz: "fldz",
	Fmul: "fmul",
	Fmulp: "fmulp",
	Fnclex: "fnclex",
	Fninit: "fninit",
	Fnop: "fnop",
	Fnsave: "fnsave",
	Fnstcw: "fnstcw",
	Fnstenv: "fnstenv",
	Fnstsw: "fnstsw",
	Fpatan: "fpatan",
	Fprem: "fprem",
	Fprem1: "fprem1",
	Fptan: "fptan",
	Frndint: "frndint",
	Frstor: "frstor",
	Fscale: "fscale",
	Fsin: "fsin",
	Fsincos: "fsincos",
	Fsqrt: "fsqrt",
	Fst: "fst",
	Fstp: "fstp",
	Fsub: "fsub",
	Fsubp: "fsubp",
	Fsubr: "fsubr",
	Fsubrp: "fsubrp",
	Ftst: "ftst",
	Fucom: "fucom",
	Fucomi: "fucomi",
	Fucomip: "fucomip",
	Fucomp: "fucomp",
	Fucompp: "fucompp",
	Fxam: "fxam",
	Fxch: "fxch",
	Fxrstor: "fxrstor",
	Fxsave: "fxsave",
	Fxtract: "fxtract",
	Fyl2x: "fyl2x",
	Fyl2xp1: "fyl2xp1",
	Getsec: "getsec",
	Haddpd: "haddpd",
	Haddps: "haddps",
	Hlt: "hlt",
	Hsubpd: "hsubpd",
	Hsubps: "hsubps",
	Idiv: "idiv",
	Imul: "imul",
	In: "in",
	Inc: "inc",
	Insb: "insb",
	Insd: "insd",
	Insertps: "insertps",
	Insw: "insw",
	Int: "int",
	Int1: "int1",
	Int3: "int3",
	Into: "into",
	Invd: "invd",
	Invlpg: "invlpg",
	Iret: "iret",
	Iretd: "iretd",
	Iretq: "iretq",
	Ja: "ja",
	Jae: "jae",
	Jb: "jb",
	Jbe: "jbe",
	Jcxz: "jcxz",
	Je: "je",
	Jecxz: "jecxz",
	Jg: "jg",
	Jge: "jge",
	Jl: "jl",
	Jle: "jle",
	Jmp: "jmp",
	Jmpf: "jmpf",
	Jne: "jne",
	Jno: "jno",
	Jnp: "jnp",
	Jns: "jns",
	Jo: "jo",
	Jp: "jp",
	Jrcxz: "jrcxz",
	Js: "js",
	Kandw: "kandw",
	Kmovw: "kmovw",
	Knotw: "knotw",
	Kortestw: "kortestw",
	Korw: "korw",
	Kxorw: "kxorw",
	Lahf: "lahf",
	Lar: "lar",
	Lddqu: "lddqu",
	Ldmxcsr: "ldmxcsr",
	Lds: "lds",
	Lea: "lea",
	Leave: "leave",
	Les: "les",
	Lfence: "lfence",
	Lfs: "lfs",
	Lgdt: "lgdt",
	Lgs: "lgs",
	Lidt: "lidt",
	Lldt: "lldt",
	Lmsw: "lmsw",
	Lodsb: "lodsb",
	Lodsd: "lodsd",
	Lodsq: "lodsq",
	Lodsw: "lodsw",
	Loop: "loop",
	Loope: "loope",
	Loopne: "loopne",
	Lsl: "lsl",
	Lss: "lss",
	Ltr: "ltr",
	Lwpins: "lwpins",
	Lwpval: "lwpval",
	Lzcnt: "lzcnt",
	Maskmovdqu: "maskmovdqu",
	Maskmovq: "maskmovq",
	Maxpd: "maxpd",
	Maxps: "maxps",
	Maxsd: "maxsd",
	Maxss: "maxss",
	Mfence: "mfence",
	Minpd: "minpd",
	Minps: "minps",
	Minsd: "minsd",
	Minss: "minss",
	Monitor: "monitor",
	Mov: "mov",
	Movapd: "movapd",
	Movaps: "movaps",
	Movbe: "movbe",
	Movd: "movd",
	Movddup: "movddup",
	Movdq2q: "movdq2q",
	Movdqa: "movdqa",
	Movdqu: "movdqu",
	Movhlps: "movhlps",
	Movhpd: "movhpd",
	Movhps: "movhps",
	Movlhps: "movlhps",
	Movlpd: "movlpd",
	Movlps: "movlps",
	Movmskpd: "movmskpd",
	Movmskps: "movmskps",
	Movntdq: "movntdq",
	Movntdqa: "movntdqa",
	Movnti: "movnti",
	Movntpd: "movntpd",
	Movntps: "movntps",
	Movntq: "movntq",
	Movq: "movq",
	Movq2dq: "movq2dq",
	Movsb: "movsb",
	Movsd: "movsd",
	Movshdup: "movshdup",
	Movsldup: "movsldup",
	Movsq: "movsq",
	Movss: "movss",
	Movsw: "movsw",
	Movsx: "movsx",
	Movsxd: "movsxd",
	Movupd: "movupd",
	Movups: "movups",
	Movzx: "movzx",
	Mpsadbw: "mpsadbw",
	Mul: "mul",
	Mulpd: "mulpd",
	Mulps: "mulps",
	Mulsd: "mulsd",
	Mulss: "mulss",
	Mulx: "mulx",
	Mwait: "mwait",
	Neg: "neg",
	Nop: "nop",
	Not: "not",
	Or: "or",
	Orpd: "orpd",
	Orps: "orps",
	Out: "out",
	Outsb: "outsb",
	Outsd: "outsd",
	Outsw: "outsw",
	Pabsb: "pabsb",
	Pabsd: "pabsd",
	Pabsw: "pabsw",
	Packssdw: "packssdw",
	Packsswb: "packsswb",
	Packusdw: "packusdw",
	Packuswb: "packuswb",
	Paddb: "paddb",
	Paddd: "paddd",
	Paddq: "paddq",
	Paddsb: "paddsb",
	Paddsw: "paddsw",
	Paddusb: "paddusb",
	Paddusw: "paddusw",
	Paddw: "paddw",
	Palignr: "palignr",
	Pand: "pand",
	Pandn: "pandn",
	Pause: "pause",
	Pavgb: "pavgb",
	Pavgw: "pavgw",
	Pblendvb: "pblendvb",
	Pblendw: "pblendw",
	Pclmulqdq: "pclmulqdq",
	Pcmpeqb: "pcmpeqb",
	Pcmpeqd: "pcmpeqd",
	Pcmpeqq: "pcmpeqq",
	Pcmpeqw: "pcmpeqw",
	Pcmpestri: "pcmpestri",
	Pcmpestrm: "pcmpestrm",
	Pcmpgtb: "pcmpgtb",
	Pcmpgtd: "pcmpgtd",
	Pcmpgtq: "pcmpgtq",
	Pcmpgtw: "pcmpgtw",
	Pcmpistri: "pcmpistri",
	Pcmpistrm: "pcmpistrm",
	Pdep: "pdep",
	Pext: "pext",
	Pextrb: "pextrb",
	Pextrd: "pextrd",
	Pextrq: "pextrq",
	Pextrw: "pextrw",
	Phaddd: "phaddd",
	Phaddsw: "phaddsw",
	Phaddw: "phaddw",
	Phminposuw: "phminposuw",
	Phsubd: "phsubd",
	Phsubsw: "phsubsw",
	Phsubw: "phsubw",
	Pinsrb: "pinsrb",
	Pinsrd: "pinsrd",
	Pinsrq: "pinsrq",
	Pinsrw: "pinsrw",
	Pmaddubsw: "pmaddubsw",
	Pmaddwd: "pmaddwd",
	Pmaxsb: "pmaxsb",
	Pmaxsd: "pmaxsd",
	Pmaxsw: "pmaxsw",
	Pmaxub: "pmaxub",
	Pmaxud: "pmaxud",
	Pmaxuw: "pmaxuw",
	Pminsb: "pminsb",
	Pminsd: "pminsd",
	Pminsw: "pminsw",
	Pminub: "pminub",
	Pminud: "pminud",
	Pminuw: "pminuw",
	Pmovmskb: "pmovmskb",
	Pmovsxbd: "pmovsxbd",
	Pmovsxbq: "pmovsxbq",
	Pmovsxbw: "pmovsxbw",
	Pmovsxdq: "pmovsxdq",
	Pmovsxwd: "pmovsxwd",
	Pmovsxwq: "pmovsxwq",
	Pmovzxbd: "pmovzxbd",
	Pmovzxbq: "pmovzxbq",
	Pmovzxbw: "pmovzxbw",
	Pmovzxdq: "pmovzxdq",
	Pmovzxwd: "pmovzxwd",
	Pmovzxwq: "pmovzxwq",
	Pmuldq: "pmuldq",
	Pmulhrsw: "pmulhrsw",
	Pmulhuw: "pmulhuw",
	Pmulhw: "pmulhw",
	Pmulld: "pmulld",
	Pmullw: "pmullw",
	Pmuludq: "pmuludq",
	Pop: "pop",
	Popa: "popa",
	Popad: "popad",
	Popcnt: "popcnt",
	Popf: "popf",
	Popfd: "popfd",
	Popfq: "popfq",
	Por: "por",
	Prefetchnta: "prefetchnta",
	Prefetcht0: "prefetcht0",
	Prefetcht1: "prefetcht1",
	Prefetcht2: "prefetcht2",
	Prefetchw: "prefetchw",
	Psadbw: "psadbw",
	Pshufb: "pshufb",
	Pshufd: "pshufd",
	Pshufhw: "pshufhw",
	Pshuflw: "pshuflw",
	Pshufw: "pshufw",
	Psignb: "psignb",
	Psignd: "psignd",
	Psignw: "psignw",
	Pslld: "pslld",
	Pslldq: "pslldq",
	Psllq: "psllq",
	Psllw: "psllw",
	Psrad: "psrad",
	Psraw: "psraw",
	Psrld: "psrld",
	Psrldq: "psrldq",
	Psrlq: "psrlq",
	Psrlw: "psrlw",
	Psubb: "psubb",
	Psubd: "psubd",
	Psubq: "psubq",
	Psubsb: "psubsb",
	Psubsw: "psubsw",
	Psubusb: "psubusb",
	Psubusw: "psubusw",
	Psubw: "psubw",
	Ptest: "ptest",
	Punpckhbw: "punpckhbw",
	Punpckhdq: "punpckhdq",
	Punpckhqdq: "punpckhqdq",
	Punpckhwd: "punpckhwd",
	Punpcklbw: "punpcklbw",
	Punpckldq: "punpckldq",
	Punpcklqdq: "punpcklqdq",
	Punpcklwd: "punpcklwd",
	Push: "push",
	Pusha: "pusha",
	Pushad: "pushad",
	Pushf: "pushf",
	Pushfd: "pushfd",
	Pushfq: "pushfq",
	Pxor: "pxor",
	Rcl: "rcl",
	Rcpps: "rcpps",
	Rcpss: "rcpss",
	Rcr: "rcr",
	Rdfsbase: "rdfsbase",
	Rdgsbase: "rdgsbase",
	Rdmsr: "rdmsr",
	Rdpid: "rdpid",
	Rdpmc: "rdpmc",
	Rdrand: "rdrand",
	Rdseed: "rdseed",
	Rdtsc: "rdtsc",
	Rdtscp: "rdtscp",
	Ret: "ret",
	Retf: "retf",
	Rol: "rol",
	Ror: "ror",
	Rorx: "rorx",
	Roundpd: "roundpd",
	Roundps: "roundps",
	Roundsd: "roundsd",
	Roundss: "roundss",
	Rsm: "rsm",
	Rsqrtps: "rsqrtps",
	Rsqrtss: "rsqrtss",
	Sahf: "sahf",
	Sal: "sal",
	Salc: "salc",
	Sar: "sar",
	Sarx: "sarx",
	Sbb: "sbb",
	Scasb: "scasb",
	Scasd: "scasd",
	Scasq: "scasq",
	Scasw: "scasw",
	Seta: "seta",
	Setae: "setae",
	Setb: "setb",
	Setbe: "setbe",
	Sete: "sete",
	Setg: "setg",
	Setge: "setge",
	Setl: "setl",
	Setle: "setle",
	Setne: "setne",
	Setno: "setno",
	Setnp: "setnp",
	Setns: "setns",
	Seto: "seto",
	Setp: "setp",
	Sets: "sets",
	Sfence: "sfence",
	Sgdt: "sgdt",
	Shl: "shl",
	Shld: "shld",
	Shlx: "shlx",
	Shr: "shr",
	Shrd: "shrd",
	Shrx: "shrx",
	Shufpd: "shufpd",
	Shufps: "shufps",
	Sidt: "sidt",
	Sldt: "sldt",
	Smsw: "smsw",
	Sqrtpd: "sqrtpd",
	Sqrtps: "sqrtps",
	Sqrtsd: "sqrtsd",
	Sqrtss: "sqrtss",
	Stac: "stac",
	Stc: "stc",
	Std: "std",
	Sti: "sti",
	Stmxcsr: "stmxcsr",
	Stosb: "stosb",
	Stosd: "stosd",
	Stosq: "stosq",
	Stosw: "stosw",
	Str: "str",
	Sub: "sub",
	Subpd: "subpd",
	Subps: "subps",
	Subsd: "subsd",
	Subss: "subss",
	Swapgs: "swapgs",
	Syscall: "syscall",
	Sysenter: "sysenter",
	Sysexit: "sysexit",
	Sysret: "sysret",
	Sysretq: "sysretq",
	T1mskc: "t1mskc",
	Test: "test",
	Tzcnt: "tzcnt",
	Tzmsk: "tzmsk",
	Ucomisd: "ucomisd",
	Ucomiss: "ucomiss",
	Ud0: "ud0",
	Ud1: "ud1",
	Ud2: "ud2",
	Unpckhpd: "unpckhpd",
	Unpckhps: "unpckhps",
	Unpcklpd: "unpcklpd",
	Unpcklps: "unpcklps",
	Vaddpd: "vaddpd",
	Vaddps: "vaddps",
	Vaddsd: "vaddsd",
	Vaddss: "vaddss",
	Vaddsubpd: "vaddsubpd",
	Vaddsubps: "vaddsubps",
	Vaesdec: "vaesdec",
	Vaesdeclast: "vaesdeclast",
	Vaesenc: "vaesenc",
	Vaesenclast: "vaesenclast",
	Vaesimc: "vaesimc",
	Vaeskeygenassist: "vaeskeygenassist",
	Valignd: "valignd",
	Valignq: "valignq",
	Vandnpd: "vandnpd",
	Vandnps: "vandnps",
	Vandpd: "vandpd",
	Vandps: "vandps",
	Vblendmpd: "vblendmpd",
	Vblendmps: "vblendmps",
	Vblendpd: "vblendpd",
	Vblendps: "vblendps",
	Vblendvpd: "vblendvpd",
	Vblendvps: "vblendvps",
	Vbroadcastf128: "vbroadcastf128",
	Vbroadcastf32x4: "vbroadcastf32x4",
	Vbroadcastf64x2: "vbroadcastf64x2",
	Vbroadcasti128: "vbroadcasti128",
	Vbroadcasti32x4: "vbroadcasti32x4",
	Vbroadcasti64x2: "vbroadcasti64x2",
	Vbroadcastsd: "vbroadcastsd",
	Vbroadcastss: "vbroadcastss",
	Vcmppd: "vcmppd",
	Vcmpps: "vcmpps",
	Vcmpsd: "vcmpsd",
	Vcmpss: "vcmpss",
	Vcomisd: "vcomisd",
	Vcomiss: "vcomiss",
	Vcvtdq2pd: "vcvtdq2pd",
	Vcvtdq2ps: "vcvtdq2ps",
	Vcvtpd2dq: "vcvtpd2dq",
	Vcvtpd2ps: "vcvtpd2ps",
	Vcvtph2ps: "vcvtph2ps",
	Vcvtps2dq: "vcvtps2dq",
	Vcvtps2pd: "vcvtps2pd",
	Vcvtps2ph: "vcvtps2ph",
	Vcvtsd2si: "vcvtsd2si",
	Vcvtsd2ss: "vcvtsd2ss",
	Vcvtsi2sd: "vcvtsi2sd",
	Vcvtsi2ss: "vcvtsi2ss",
	Vcvtss2sd: "vcvtss2sd",
	Vcvtss2si: "vcvtss2si",
	Vcvttpd2dq: "vcvttpd2dq",
	Vcvttps2dq: "vcvttps2dq",
	Vcvttsd2si: "vcvttsd2si",
	Vcvttss2si: "vcvttss2si",
	Vdbpsadbw: "vdbpsadbw",
	Vdivpd: "vdivpd",
	Vdivps: "vdivps",
	Vdivsd: "vdivsd",
	Vdivss: "vdivss",
	Vdppd: "vdppd",
	Vdpps: "vdpps",
	Verr: "verr",
	Verw: "verw",
	Vextractf128: "vextractf128",
	Vextractf32x4: "vextractf32x4",
	Vextractf32x8: "vextractf32x8",
	Vextractf64x2: "vextractf64x2",
	Vextractf64x4: "vextractf64x4",
	Vextracti128: "vextracti128",
	Vextracti32x4: "vextracti32x4",
	Vextracti32x8: "vextracti32x8",
	Vextracti64x2: "vextracti64x2",
	Vextracti64x4: "vextracti64x4",
	Vextractps: "vextractps",
	Vfmadd132pd: "vfmadd132pd",
	Vfmadd132ps: "vfmadd132ps",
	Vfmadd132sd: "vfmadd132sd",
	Vfmadd132ss: "vfmadd132ss",
	Vfmadd213pd: "vfmadd213pd",
	Vfmadd213ps: "vfmadd213ps",
	Vfmadd213sd: "vfmadd213sd",
	Vfmadd213ss: "vfmadd213ss",
	Vfmadd231pd: "vfmadd231pd",
	Vfmadd231ps: "vfmadd231ps",
	Vfmadd231sd: "vfmadd231sd",
	Vfmadd231ss: "vfmadd231ss",
	Vfmaddsub132pd: "vfmaddsub132pd",
	Vfmaddsub132ps: "vfmaddsub132ps",
	Vfmaddsub213pd: "vfmaddsub213pd",
	Vfmaddsub213ps: "vfmaddsub213ps",
	Vfmaddsub231pd: "vfmaddsub231pd",
	Vfmaddsub231ps: "vfmaddsub231ps",
	Vfmsub132pd: "vfmsub132pd",
	Vfmsub132ps: "vfmsub132ps",
	Vfmsub132sd: "vfmsub132sd",
	Vfmsub132ss: "vfmsub132ss",
	Vfmsub213pd: "vfmsub213pd",
	Vfmsub213ps: "vfmsub213ps",
	Vfmsub213sd: "vfmsub213sd",
	Vfmsub213ss: "vfmsub213ss",
	Vfmsub231pd: "vfmsub231pd",
	Vfmsub231ps: "vfmsub231ps",
	Vfmsub231sd: "vfmsub231sd",
	Vfmsub231ss: "vfmsub231ss",
	Vfmsubadd132pd: "vfmsubadd132pd",
	Vfmsubadd132ps: "vfmsubadd132ps",
	Vfmsubadd213pd: "vfmsubadd213pd",
	Vfmsubadd213ps: "vfmsubadd213ps",
	Vfmsubadd231pd: "vfmsubadd231pd",
	Vfmsubadd231ps: "vfmsubadd231ps",
	Vfnmadd132pd: "vfnmadd132pd",
	Vfnmadd132ps: "vfnmadd132ps",
	Vfnmadd132sd: "vfnmadd132sd",
	Vfnmadd132ss: "vfnmadd132ss",
	Vfnmadd213pd: "vfnmadd213pd",
	Vfnmadd213ps: "vfnmadd213ps",
	Vfnmadd213sd: "vfnmadd213sd",
	Vfnmadd213ss: "vfnmadd213ss",
	Vfnmadd231pd: "vfnmadd231pd",
	Vfnmadd231ps: "vfnmadd231ps",
	Vfnmadd231sd: "vfnmadd231sd",
	Vfnmadd231ss: "vfnmadd231ss",
	Vfnmsub132pd: "vfnmsub132pd",
	Vfnmsub132ps: "vfnmsub132ps",
	Vfnmsub132sd: "vfnmsub132sd",
	Vfnmsub132ss: "vfnmsub132ss",
	Vfnmsub213pd: "vfnmsub213pd",
	Vfnmsub213ps: "vfnmsub213ps",
	Vfnmsub213sd: "vfnmsub213sd",
	Vfnmsub213ss: "vfnmsub213ss",
	Vfnmsub231pd: "vfnmsub231pd",
	Vfnmsub231ps: "vfnmsub231ps",
	Vfnmsub231sd: "vfnmsub231sd",
	Vfnmsub231ss: "vfnmsub231ss",
	Vfrczpd: "vfrczpd",
	Vfrczps: "vfrczps",
	Vgatherdpd: "vgatherdpd",
	Vgatherdps: "vgatherdps",
	Vgatherqpd: "vgatherqpd",
	Vgatherqps: "vgatherqps",
	Vhaddpd: "vhaddpd",
	Vhaddps: "vhaddps",
	Vhsubpd: "vhsubpd",
	Vhsubps: "vhsubps",
	Vinsertf128: "vinsertf128",
	Vinsertf32x4: "vinsertf32x4",
	Vinsertf32x8: "vinsertf32x8",
	Vinsertf64x2: "vinsertf64x2",
	Vinsertf64x4: "vinsertf64x4",
	Vinserti128: "vinserti128",
	Vinserti32x4: "vinserti32x4",
	Vinserti32x8: "vinserti32x8",
	Vinserti64x2: "vinserti64x2",
	Vinserti64x4: "vinserti64x4",
	Vinsertps: "vinsertps",
	Vlddqu: "vlddqu",
	Vldmxcsr: "vldmxcsr",
	Vmaskmovdqu: "vmaskmovdqu",
	Vmaskmovpd: "vmaskmovpd",
	Vmaskmovps: "vmaskmovps",
	Vmaxpd: "vmaxpd",
	Vmaxps: "vmaxps",
	Vmaxsd: "vmaxsd",
	Vmaxss: "vmaxss",
	Vmcall: "vmcall",
	Vminpd: "vminpd",
	Vminps: "vminps",
	Vminsd: "vminsd",
	Vminss: "vminss",
	Vmlaunch: "vmlaunch",
	Vmovapd: "vmovapd",
	Vmovaps: "vmovaps",
	Vmovd: "vmovd",
	Vmovddup: "vmovddup",
	Vmovdqa: "vmovdqa",
	Vmovdqa32: "vmovdqa32",
	Vmovdqa64: "vmovdqa64",
	Vmovdqu: "vmovdqu",
	Vmovdqu16: "vmovdqu16",
	Vmovdqu32: "vmovdqu32",
	Vmovdqu64: "vmovdqu64",
	Vmovdqu8: "vmovdqu8",
	Vmovhlps: "vmovhlps",
	Vmovhpd: "vmovhpd",
	Vmovhps: "vmovhps",
	Vmovlhps: "vmovlhps",
	Vmovlpd: "vmovlpd",
	Vmovlps: "vmovlps",
	Vmovmskpd: "vmovmskpd",
	Vmovmskps: "vmovmskps",
	Vmovntdq: "vmovntdq",
	Vmovntdqa: "vmovntdqa",
	Vmovntpd: "vmovntpd",
	Vmovntps: "vmovntps",
	Vmovq: "vmovq",
	Vmovsd: "vmovsd",
	Vmovshdup: "vmovshdup",
	Vmovsldup: "vmovsldup",
	Vmovss: "vmovss",
	Vmovupd: "vmovupd",
	Vmovups: "vmovups",
	Vmpsadbw: "vmpsadbw",
	Vmresume: "vmresume",
	Vmulpd: "vmulpd",
	Vmulps: "vmulps",
	Vmulsd: "vmulsd",
	Vmulss: "vmulss",
	Vmxoff: "vmxoff",
	Vorpd: "vorpd",
	Vorps: "vorps",
	Vpabsb: "vpabsb",
	Vpabsd: "vpabsd",
	Vpabsq: "vpabsq",
	Vpabsw: "vpabsw",
	Vpackssdw: "vpackssdw",
	Vpacksswb: "vpacksswb",
	Vpackusdw: "vpackusdw",
	Vpackuswb: "vpackuswb",
	Vpaddb: "vpaddb",
	Vpaddd: "vpaddd",
	Vpaddq: "vpaddq",
	Vpaddsb: "vpaddsb",
	Vpaddsw: "vpaddsw",
	Vpaddusb: "vpaddusb",
	Vpaddusw: "vpaddusw",
	Vpaddw: "vpaddw",
	Vpalignr: "vpalignr",
	Vpand: "vpand",
	Vpandd: "vpandd",
	Vpandn: "vpandn",
	Vpandnd: "vpandnd",
	Vpandnq: "vpandnq",
	Vpandq: "vpandq",
	Vpavgb: "vpavgb",
	Vpavgw: "vpavgw",
	Vpblendd: "vpblendd",
	Vpblendmb: "vpblendmb",
	Vpblendmd: "vpblendmd",
	Vpblendmq: "vpblendmq",
	Vpblendmw: "vpblendmw",
	Vpblendvb: "vpblendvb",
	Vpblendw: "vpblendw",
	Vpbroadcastb: "vpbroadcastb",
	Vpbroadcastd: "vpbroadcastd",
	Vpbroadcastq: "vpbroadcastq",
	Vpbroadcastw: "vpbroadcastw",
	Vpclmulqdq: "vpclmulqdq",
	Vpcmov: "vpcmov",
	Vpcmpb: "vpcmpb",
	Vpcmpd: "vpcmpd",
	Vpcmpeqb: "vpcmpeqb",
	Vpcmpeqd: "vpcmpeqd",
	Vpcmpeqq: "vpcmpeqq",
	Vpcmpeqw: "vpcmpeqw",
	Vpcmpestri: "vpcmpestri",
	Vpcmpestrm: "vpcmpestrm",
	Vpcmpgtb: "vpcmpgtb",
	Vpcmpgtd: "vpcmpgtd",
	Vpcmpgtq: "vpcmpgtq",
	Vpcmpgtw: "vpcmpgtw",
	Vpcmpistri: "vpcmpistri",
	Vpcmpistrm: "vpcmpistrm",
	Vpcmpq: "vpcmpq",
	Vpcmpub: "vpcmpub",
	Vpcmpud: "vpcmpud",
	Vpcmpuq: "vpcmpuq",
	Vpcmpuw: "vpcmpuw",
	Vpcmpw: "vpcmpw",
	Vpcomb: "vpcomb",
	Vpconflictd: "vpconflictd",
	Vpconflictq: "vpconflictq",
	Vperm2f128: "vperm2f128",
	Vperm2i128: "vperm2i128",
	Vpermd: "vpermd",
	Vpermi2d: "vpermi2d",
	Vpermi2pd: "vpermi2pd",
	Vpermi2ps: "vpermi2ps",
	Vpermi2q: "vpermi2q",
	Vpermilpd: "vpermilpd",
	Vpermilps: "vpermilps",
	Vpermpd: "vpermpd",
	Vpermps: "vpermps",
	Vpermq: "vpermq",
	Vpermt2d: "vpermt2d",
	Vpermt2pd: "vpermt2pd",
	Vpermt2ps: "vpermt2ps",
	Vpermt2q: "vpermt2q",
	Vpextrb: "vpextrb",
	Vpextrd: "vpextrd",
	Vpextrq: "vpextrq",
	Vpextrw: "vpextrw",
	Vpgatherdd: "vpgatherdd",
	Vpgatherdq: "vpgatherdq",
	Vpgatherqd: "vpgatherqd",
	Vpgatherqq: "vpgatherqq",
	Vphaddd: "vphaddd",
	Vphaddsw: "vphaddsw",
	Vphaddw: "vphaddw",
	Vphminposuw: "vphminposuw",
	Vphsubd: "vphsubd",
	Vphsubsw: "vphsubsw",
	Vphsubw: "vphsubw",
	Vpinsrb: "vpinsrb",
	Vpinsrd: "vpinsrd",
	Vpinsrq: "vpinsrq",
	Vpinsrw: "vpinsrw",
	Vplzcntd: "vplzcntd",
	Vplzcntq: "vplzcntq",
	Vpmaddubsw: "vpmaddubsw",
	Vpmaddwd: "vpmaddwd",
	Vpmaskmovd: "vpmaskmovd",
	Vpmaskmovq: "vpmaskmovq",
	Vpmaxsb: "vpmaxsb",
	Vpmaxsd: "vpmaxsd",
	Vpmaxsq: "vpmaxsq",
	Vpmaxsw: "vpmaxsw",
	Vpmaxub: "vpmaxub",
	Vpmaxud: "vpmaxud",
	Vpmaxuq: "vpmaxuq",
	Vpmaxuw: "vpmaxuw",
	Vpminsb: "vpminsb",
	Vpminsd: "vpminsd",
	Vpminsq: "vpminsq",
	Vpminsw: "vpminsw",
	Vpminub: "vpminub",
	Vpminud: "vpminud",
	Vpminuq: "vpminuq",
	Vpminuw: "vpminuw",
	Vpmovb2m: "vpmovb2m",
	Vpmovd2m: "vpmovd2m",
	Vpmovdb: "vpmovdb",
	Vpmovdw: "vpmovdw",
	Vpmovm2b: "vpmovm2b",
	Vpmovm2d: "vpmovm2d",
	Vpmovm2q: "vpmovm2q",
	Vpmovm2w: "vpmovm2w",
	Vpmovmskb: "vpmovmskb",
	Vpmovq2m: "vpmovq2m",
	Vpmovqb: "vpmovqb",
	Vpmovqd: "vpmovqd",
	Vpmovqw: "vpmovqw",
	Vpmovsxbd: "vpmovsxbd",
	Vpmovsxbq: "vpmovsxbq",
	Vpmovsxbw: "vpmovsxbw",
	Vpmovsxdq: "vpmovsxdq",
	Vpmovsxwd: "vpmovsxwd",
	Vpmovsxwq: "vpmovsxwq",
	Vpmovw2m: "vpmovw2m",
	Vpmovwb: "vpmovwb",
	Vpmovzxbd: "vpmovzxbd",
	Vpmovzxbq: "vpmovzxbq",
	Vpmovzxbw: "vpmovzxbw",
	Vpmovzxdq: "vpmovzxdq",
	Vpmovzxwd: "vpmovzxwd",
	Vpmovzxwq: "vpmovzxwq",
	Vpmuldq: "vpmuldq",
	Vpmulhrsw: "vpmulhrsw",
	Vpmulhuw: "vpmulhuw",
	Vpmulhw: "vpmulhw",
	Vpmulld: "vpmulld",
	Vpmullq: "vpmullq",
	Vpmullw: "vpmullw",
	Vpmuludq: "vpmuludq",
	Vpor: "vpor",
	Vpord: "vpord",
	Vporq: "vporq",
	Vpperm: "vpperm",
	Vprold: "vprold",
	Vprolq: "vprolq",
	Vprord: "vprord",
	Vprorq: "vprorq",
	Vprotb: "vprotb",
	Vprotd: "vprotd",
	Vpsadbw: "vpsadbw",
	Vpscatterdd: "vpscatterdd",
	Vpscatterdq: "vpscatterdq",
	Vpscatterqd: "vpscatterqd",
	Vpscatterqq: "vpscatterqq",
	Vpshufb: "vpshufb",
	Vpshufd: "vpshufd",
	Vpshufhw: "vpshufhw",
	Vpshuflw: "vpshuflw",
	Vpsignb: "vpsignb",
	Vpsignd: "vpsignd",
	Vpsignw: "vpsignw",
	Vpslld: "vpslld",
	Vpslldq: "vpslldq",
	Vpsllq: "vpsllq",
	Vpsllvd: "vpsllvd",
	Vpsllvq: "vpsllvq",
	Vpsllw: "vpsllw",
	Vpsrad: "vpsrad",
	Vpsraq: "vpsraq",
	Vpsravd: "vpsravd",
	Vpsravq: "vpsravq",
	Vpsraw: "vpsraw",
	Vpsrld: "vpsrld",
	Vpsrldq: "vpsrldq",
	Vpsrlq: "vpsrlq",
	Vpsrlvd: "vpsrlvd",
	Vpsrlvq: "vpsrlvq",
	Vpsrlw: "vpsrlw",
	Vpsubb: "vpsubb",
	Vpsubd: "vpsubd",
	Vpsubq: "vpsubq",
	Vpsubsb: "vpsubsb",
	Vpsubsw: "vpsubsw",
	Vpsubusb: "vpsubusb",
	Vpsubusw: "vpsubusw",
	Vpsubw: "vpsubw",
	Vpternlogd: "vpternlogd",
	Vpternlogq: "vpternlogq",
	Vptest: "vptest",
	Vptestmb: "vptestmb",
	Vptestmd: "vptestmd",
	Vptestmq: "vptestmq",
	Vptestmw: "vptestmw",
	Vptestnmb: "vptestnmb",
	Vptestnmd: "vptestnmd",
	Vptestnmq: "vptestnmq",
	Vptestnmw: "vptestnmw",
	Vpunpckhbw: "vpunpckhbw",
	Vpunpckhdq: "vpunpckhdq",
	Vpunpckhqdq: "vpunpckhqdq",
	Vpunpckhwd: "vpunpckhwd",
	Vpunpcklbw: "vpunpcklbw",
	Vpunpckldq: "vpunpckldq",
	Vpunpcklqdq: "vpunpcklqdq",
	Vpunpcklwd: "vpunpcklwd",
	Vpxor: "vpxor",
	Vpxord: "vpxord",
	Vpxorq: "vpxorq",
	Vrcp14pd: "vrcp14pd",
	Vrcp14ps: "vrcp14ps",
	Vrcpps: "vrcpps",
	Vrcpss: "vrcpss",
	Vrndscalepd: "vrndscalepd",
	Vrndscaleps: "vrndscaleps",
	Vrndscalesd: "vrndscalesd",
	Vrndscaless: "vrndscaless",
	Vroundpd: "vroundpd",
	Vroundps: "vroundps",
	Vroundsd: "vroundsd",
	Vroundss: "vroundss",
	Vrsqrt14pd: "vrsqrt14pd",
	Vrsqrt14ps: "vrsqrt14ps",
	Vrsqrtps: "vrsqrtps",
	Vrsqrtss: "vrsqrtss",
	Vscatterdpd: "vscatterdpd",
	Vscatterdps: "vscatterdps",
	Vscatterqpd: "vscatterqpd",
	Vscatterqps: "vscatterqps",
	Vshuff32x4: "vshuff32x4",
	Vshuff64x2: "vshuff64x2",
	Vshufi32x4: "vshufi32x4",
	Vshufi64x2: "vshufi64x2",
	Vshufpd: "vshufpd",
	Vshufps: "vshufps",
	Vsqrtpd: "vsqrtpd",
	Vsqrtps: "vsqrtps",
	Vsqrtsd: "vsqrtsd",
	Vsqrtss: "vsqrtss",
	Vstmxcsr: "vstmxcsr",
	Vsubpd: "vsubpd",
	Vsubps: "vsubps",
	Vsubsd: "vsubsd",
	Vsubss: "vsubss",
	Vtestpd: "vtestpd",
	Vtestps: "vtestps",
	Vucomisd: "vucomisd",
	Vucomiss: "vucomiss",
	Vunpckhpd: "vunpckhpd",
	Vunpckhps: "vunpckhps",
	Vunpcklpd: "vunpcklpd",
	Vunpcklps: "vunpcklps",
	Vxorpd: "vxorpd",
	Vxorps: "vxorps",
	Vzeroall: "vzeroall",
	Vzeroupper: "vzeroupper",
	Wait: "wait",
	Wbinvd: "wbinvd",
	Wrfsbase: "wrfsbase",
	Wrgsbase: "wrgsbase",
	Wrmsr: "wrmsr",
	Xabort: "xabort",
	Xadd: "xadd",
	Xbegin: "xbegin",
	Xchg: "xchg",
	Xend: "xend",
	Xgetbv: "xgetbv",
	Xlatb: "xlatb",
	Xor: "xor",
	Xorpd: "xorpd",
	Xorps: "xorps",
	Xrstor: "xrstor",
	Xsave: "xsave",
	Xsaveopt: "xsaveopt",
	Xsetbv: "xsetbv",
	Xtest: "xtest",
}
