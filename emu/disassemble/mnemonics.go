/*
 * TULIP4041 - HP-41 NUT mnemonic table
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package disassemble

// mnemonics maps each 10 bit opcode to its JDA style mnemonic.
var mnemonics = [1024]string{
	"NOP", "GO/XQ", "A=0 @R", "JNC +0", // 000
	"CLRF 3", "GO/XQ", "A=0 S&X", "JC 0", // 004
	"SETF 3", "GO/XQ", "A=0 R<-", "JNC +1", // 008
	"?FSET 3", "GO/XQ", "A=0 ALL", "JC 1", // 00C
	"LD@R 0", "GO/XQ", "A=0 P-Q", "JNC +2", // 010
	"?R= 3", "GO/XQ", "A=0 XS", "JC 2", // 014
	"UNUSED", "GO/XQ", "A=0 M", "JNC +3", // 018
	"R= 3", "GO/XQ", "A=0 MS", "JC 3", // 01C
	"XQ>GO", "GO/XQ", "B=0 @R", "JNC +4", // 020
	"SELP 0", "GO/XQ", "B=0 S&X", "JC 4", // 024
	"WRIT 0(T)", "GO/XQ", "B=0 R<-", "JNC +5", // 028
	"?FI 3", "GO/XQ", "B=0 ALL", "JC 5", // 02C
	"ROMBLK", "GO/XQ", "B=0 P-Q", "JNC +6", // 030
	"UNUSED", "GO/XQ", "B=0 XS", "JC 6", // 034
	"READ 0(T)", "GO/XQ", "B=0 M", "JNC +7", // 038
	"RCR 3", "GO/XQ", "B=0 MS", "JC 7", // 03C
	"WROM", "GO/XQ", "C=0 @R", "JNC +8", // 040
	"CLRF 4", "GO/XQ", "C=0 S&X", "JC 8", // 044
	"SETF 4", "GO/XQ", "C=0 R<-", "JNC +9", // 048
	"?FSET 4", "GO/XQ", "C=0 ALL", "JC 9", // 04C
	"LD@R 1", "GO/XQ", "C=0 P-Q", "JNC +10", // 050
	"?R= 4", "GO/XQ", "C=0 XS", "JC 10", // 054
	"G=C", "GO/XQ", "C=0 M", "JNC +11", // 058
	"R= 4", "GO/XQ", "C=0 MS", "JC 11", // 05C
	"POWOFF", "GO/XQ", "A<>B @R", "JNC +12", // 060
	"SELP 1", "GO/XQ", "A<>B S&X", "JC 12", // 064
	"WRIT 1(Z)", "GO/XQ", "A<>B R<-", "JNC +13", // 068
	"?FI 4", "GO/XQ", "A<>B ALL", "JC 13", // 06C
	"N=C", "GO/XQ", "A<>B P-Q", "JNC +14", // 070
	"UNUSED", "GO/XQ", "A<>B XS", "JC 14", // 074
	"READ 1(Z)", "GO/XQ", "A<>B M", "JNC +15", // 078
	"RCR 4", "GO/XQ", "A<>B MS", "JC 15", // 07C
	"UNUSED", "GO/XQ", "B=A @R", "JNC +16", // 080
	"CLRF 5", "GO/XQ", "B=A S&X", "JC 16", // 084
	"SETF 5", "GO/XQ", "B=A R<-", "JNC +17", // 088
	"?FSET 5", "GO/XQ", "B=A ALL", "JC 17", // 08C
	"LD@R 2", "GO/XQ", "B=A P-Q", "JNC +18", // 090
	"?R= 5", "GO/XQ", "B=A XS", "JC 18", // 094
	"C=G", "GO/XQ", "B=A M", "JNC +19", // 098
	"R= 5", "GO/XQ", "B=A MS", "JC 19", // 09C
	"SLCTP", "GO/XQ", "A<>C @R", "JNC +20", // 0A0
	"SELP 2", "GO/XQ", "A<>C S&X", "JC 20", // 0A4
	"WRIT 2(Y)", "GO/XQ", "A<>C R<-", "JNC +21", // 0A8
	"?FI 5 ?EDAV", "GO/XQ", "A<>C ALL", "JC 21", // 0AC
	"C=N", "GO/XQ", "A<>C P-Q", "JNC +22", // 0B0
	"UNUSED", "GO/XQ", "A<>C XS", "JC 22", // 0B4
	"READ 2(Y)", "GO/XQ", "A<>C M", "JNC +23", // 0B8
	"RCR 5", "GO/XQ", "A<>C MS", "JC 23", // 0BC
	"EADD=C MAXX", "GO/XQ", "C=B @R", "JNC +24", // 0C0
	"CLRF 10", "GO/XQ", "C=B S&X", "JC 24", // 0C4
	"SETF 10", "GO/XQ", "C=B R<-", "JNC +25", // 0C8
	"?FSET 10", "GO/XQ", "C=B ALL", "JC 25", // 0CC
	"LD@R 3", "GO/XQ", "C=B P-Q", "JNC +26", // 0D0
	"?R= 10", "GO/XQ", "C=B XS", "JC 26", // 0D4
	"C<>G", "GO/XQ", "C=B M", "JNC +27", // 0D8
	"R= 10", "GO/XQ", "C=B MS", "JC 27", // 0DC
	"SLCTQ", "GO/XQ", "B<>C @R", "JNC +28", // 0E0
	"SELP 3", "GO/XQ", "B<>C S&X", "JC 28", // 0E4
	"WRIT 3(X)", "GO/XQ", "B<>C R<-", "JNC +29", // 0E8
	"?FI 10 ?ORAV", "GO/XQ", "B<>C ALL", "JC 29", // 0EC
	"C<>N", "GO/XQ", "B<>C P-Q", "JNC +30", // 0F0
	"UNUSED", "GO/XQ", "B<>C XS", "JC 30", // 0F4
	"READ 3(X)", "GO/XQ", "B<>C M", "JNC +31", // 0F8
	"RCR 10", "GO/XQ", "B<>C MS", "JC 31", // 0FC
	"ENBANK1", "GO/XQ", "A=C @R", "JNC +32", // 100
	"CLRF 8", "GO/XQ", "A=C S&X", "JC 32", // 104
	"SETF 8", "GO/XQ", "A=C R<-", "JNC +33", // 108
	"?FSET 8", "GO/XQ", "A=C ALL", "JC 33", // 10C
	"LD@R 4", "GO/XQ", "A=C P-Q", "JNC +34", // 110
	"?R= 8", "GO/XQ", "A=C XS", "JC 34", // 114
	"UNUSED", "GO/XQ", "A=C M", "JNC +35", // 118
	"R= 8", "GO/XQ", "A=C MS", "JC 35", // 11C
	"?P=Q", "GO/XQ", "A=A+B @R", "JNC +36", // 120
	"SELP 4", "GO/XQ", "A=A+B S&X", "JC 36", // 124
	"WRIT 4(L)", "GO/XQ", "A=A+B R<-", "JNC +37", // 128
	"?FI 8 ?FRAV", "GO/XQ", "A=A+B ALL", "JC 37", // 12C
	"LDI", "GO/XQ", "A=A+B P-Q", "JNC +38", // 130
	"UNUSED", "GO/XQ", "A=A+B XS", "JC 38", // 134
	"READ 4(L)", "GO/XQ", "A=A+B M", "JNC +39", // 138
	"RCR 8", "GO/XQ", "A=A+B MS", "JC 39", // 13C
	"ENBANK3", "GO/XQ", "A=A+C @R", "JNC +40", // 140
	"CLRF 6", "GO/XQ", "A=A+C S&X", "JC 40", // 144
	"SETF 6", "GO/XQ", "A=A+C R<-", "JNC +41", // 148
	"?FSET 6", "GO/XQ", "A=A+C ALL", "JC 41", // 14C
	"LD@R 5", "GO/XQ", "A=A+C P-Q", "JNC +42", // 150
	"?R= 6", "GO/XQ", "A=A+C XS", "JC 42", // 154
	"M=C", "GO/XQ", "A=A+C M", "JNC +43", // 158
	"R= 6", "GO/XQ", "A=A+C MS", "JC 43", // 15C
	"?LOWBAT", "GO/XQ", "A=A+1 @R", "JNC +44", // 160
	"SELP 5", "GO/XQ", "A=A+1 S&X", "JC 44", // 164
	"WRIT 5(M)", "GO/XQ", "A=A+1 R<-", "JNC +45", // 168
	"?FI 6 ?IFCR", "GO/XQ", "A=A+1 ALL", "JC 45", // 16C
	"PUSHADR", "GO/XQ", "A=A+1 P-Q", "JNC +46", // 170
	"UNUSED", "GO/XQ", "A=A+1 XS", "JC 46", // 174
	"READ 5(M)", "GO/XQ", "A=A+1 M", "JNC +47", // 178
	"RCR 6", "GO/XQ", "A=A+1 MS", "JC 47", // 17C
	"ENBANK2", "GO/XQ", "A=A-B @R", "JNC +48", // 180
	"CLRF 11", "GO/XQ", "A=A-B S&X", "JC 48", // 184
	"SETF 11", "GO/XQ", "A=A-B R<-", "JNC +49", // 188
	"?FSET 11", "GO/XQ", "A=A-B ALL", "JC 49", // 18C
	"LD@R 6", "GO/XQ", "A=A-B P-Q", "JNC +50", // 190
	"?R= 11", "GO/XQ", "A=A-B XS", "JC 50", // 194
	"C=M", "GO/XQ", "A=A-B M", "JNC +51", // 198
	"R= 11", "GO/XQ", "A=A-B MS", "JC 51", // 19C
	"A=B=C=0", "GO/XQ", "A=A-1 @R", "JNC +52", // 1A0
	"SELP 6", "GO/XQ", "A=A-1 S&X", "JC 52", // 1A4
	"WRIT 6(N)", "GO/XQ", "A=A-1 R<-", "JNC +53", // 1A8
	"?FI 11 ?TFAIL", "GO/XQ", "A=A-1 ALL", "JC 53", // 1AC
	"POPADR", "GO/XQ", "A=A-1 P-Q", "JNC +54", // 1B0
	"UNUSED", "GO/XQ", "A=A-1 XS", "JC 54", // 1B4
	"READ 6(N)", "GO/XQ", "A=A-1 M", "JNC +55", // 1B8
	"RCR 11", "GO/XQ", "A=A-1 MS", "JC 55", // 1BC
	"ENBANK4", "GO/XQ", "A=A-C @R", "JNC +56", // 1C0
	"UNUSED", "GO/XQ", "A=A-C S&X", "JC 56", // 1C4
	"UNUSED", "GO/XQ", "A=A-C R<-", "JNC +57", // 1C8
	"UNUSED", "GO/XQ", "A=A-C ALL", "JC 57", // 1CC
	"LD@R 7", "GO/XQ", "A=A-C P-Q", "JNC +58", // 1D0
	"UNUSED", "GO/XQ", "A=A-C XS", "JC 58", // 1D4
	"C<>M", "GO/XQ", "A=A-C M", "JNC +59", // 1D8
	"UNUSED", "GO/XQ", "A=A-C MS", "JC 59", // 1DC
	"GOTOADR", "GO/XQ", "C=C+C @R", "JNC +60", // 1E0
	"SELP 7", "GO/XQ", "C=C+C S&X", "JC 60", // 1E4
	"WRIT 7(O)", "GO/XQ", "C=C+C R<-", "JNC +61", // 1E8
	"UNUSED", "GO/XQ", "C=C+C ALL", "JC 61", // 1EC
	"WPTOG", "GO/XQ", "C=C+C P-Q", "JNC +62", // 1F0
	"UNUSED", "GO/XQ", "C=C+C XS", "JC 62", // 1F4
	"READ 7(O)", "GO/XQ", "C=C+C M", "JNC +63", // 1F8
	"WCMD", "GO/XQ", "C=C+C MS", "JC 63", // 1FC
	"HPIL=C 0", "GO/XQ", "C=C+A @R", "JNC -64", // 200
	"CLRF 2", "GO/XQ", "C=C+A S&X", "JC -64", // 204
	"SETF 2", "GO/XQ", "C=C+A R<-", "JNC -63", // 208
	"?FSET 2", "GO/XQ", "C=C+A ALL", "JC -63", // 20C
	"LD@R 8", "GO/XQ", "C=C+A P-Q", "JNC -62", // 210
	"?R= 2", "GO/XQ", "C=C+A XS", "JC -62", // 214
	"UNUSED", "GO/XQ", "C=C+A M", "JNC -61", // 218
	"R= 2", "GO/XQ", "C=C+A MS", "JC -61", // 21C
	"C=KEY", "GO/XQ", "C=C+1 @R", "JNC -60", // 220
	"SELP 8", "GO/XQ", "C=C+1 S&X", "JC -60", // 224
	"WRIT 8(P)", "GO/XQ", "C=C+1 R<-", "JNC -59", // 228
	"?FI 2 ?WNDB", "GO/XQ", "C=C+1 ALL", "JC -59", // 22C
	"GTOKEY", "GO/XQ", "C=C+1 P-Q", "JNC -58", // 230
	"UNUSED", "GO/XQ", "C=C+1 XS", "JC -58", // 234
	"READ 8(P)", "GO/XQ", "C=C+1 M", "JNC -57", // 238
	"RCR 2", "GO/XQ", "C=C+1 MS", "JC -57", // 23C
	"HPIL=C 1", "GO/XQ", "C=A-C @R", "JNC -56", // 240
	"CLRF 9", "GO/XQ", "C=A-C S&X", "JC -56", // 244
	"SETF 9", "GO/XQ", "C=A-C R<-", "JNC -55", // 248
	"?FSET 9", "GO/XQ", "C=A-C ALL", "JC -55", // 24C
	"LD@R 9", "GO/XQ", "C=A-C P-Q", "JNC -54", // 250
	"?R= 9", "GO/XQ", "C=A-C XS", "JC -54", // 254
	"T=ST", "GO/XQ", "C=A-C M", "JNC -53", // 258
	"R= 9", "GO/XQ", "C=A-C MS", "JC -53", // 25C
	"SETHEX", "GO/XQ", "C=C-1 @R", "JNC -52", // 260
	"SELP 9", "GO/XQ", "C=C-1 S&X", "JC -52", // 264
	"WRIT 9(Q)", "GO/XQ", "C=C-1 R<-", "JNC -51", // 268
	"?FI 9 ?FRNS", "GO/XQ", "C=C-1 ALL", "JC -51", // 26C
	"RAMSLCT", "GO/XQ", "C=C-1 P-Q", "JNC -50", // 270
	"UNUSED", "GO/XQ", "C=C-1 XS", "JC -50", // 274
	"READ 9(Q)", "GO/XQ", "C=C-1 M", "JNC -49", // 278
	"RCR 9", "GO/XQ", "C=C-1 MS", "JC -49", // 27C
	"HPIL=C 2", "GO/XQ", "C=0-C @R", "JNC -48", // 280
	"CLRF 7", "GO/XQ", "C=0-C S&X", "JC -48", // 284
	"SETF 7", "GO/XQ", "C=0-C R<-", "JNC -47", // 288
	"?FSET 7", "GO/XQ", "C=0-C ALL", "JC -47", // 28C
	"LD@R A", "GO/XQ", "C=0-C P-Q", "JNC -46", // 290
	"?R= 7", "GO/XQ", "C=0-C XS", "JC -46", // 294
	"ST=T", "GO/XQ", "C=0-C M", "JNC -45", // 298
	"R= 7", "GO/XQ", "C=0-C MS", "JC -45", // 29C
	"SETDEC", "GO/XQ", "C=-C-1 @R", "JNC -44", // 2A0
	"SELP A", "GO/XQ", "C=-C-1 S&X", "JC -44", // 2A4
	"WRIT 10(+)", "GO/XQ", "C=-C-1 R<-", "JNC -43", // 2A8
	"?FI 7 ?SRQR", "GO/XQ", "C=-C-1 ALL", "JC -43", // 2AC
	"UNUSED", "GO/XQ", "C=-C-1 P-Q", "JNC -42", // 2B0
	"UNUSED", "GO/XQ", "C=-C-1 XS", "JC -42", // 2B4
	"READ 10(+)", "GO/XQ", "C=-C-1 M", "JNC -41", // 2B8
	"RCR 7", "GO/XQ", "C=-C-1 MS", "JC -41", // 2BC
	"HPIL=C 3", "GO/XQ", "?B#0 @R", "JNC -40", // 2C0
	"CLRF 13", "GO/XQ", "?B#0 S&X", "JC -40", // 2C4
	"SETF 13", "GO/XQ", "?B#0 R<-", "JNC -39", // 2C8
	"?FSET 13", "GO/XQ", "?B#0 ALL", "JC -39", // 2CC
	"LD@R B", "GO/XQ", "?B#0 P-Q", "JNC -38", // 2D0
	"?R= 13", "GO/XQ", "?B#0 XS", "JC -38", // 2D4
	"ST<>T", "GO/XQ", "?B#0 M", "JNC -37", // 2D8
	"R= 13", "GO/XQ", "?B#0 MS", "JC -37", // 2DC
	"DSPOFF", "GO/XQ", "?C#0 @R", "JNC -36", // 2E0
	"SELP B", "GO/XQ", "?C#0 S&X", "JC -36", // 2E4
	"WRIT 11(a)", "GO/XQ", "?C#0 R<-", "JNC -35", // 2E8
	"?FI 13 ?SERV", "GO/XQ", "?C#0 ALL", "JC -35", // 2EC
	"WRITDAT", "GO/XQ", "?C#0 P-Q", "JNC -34", // 2F0
	"UNUSED", "GO/XQ", "?C#0 XS", "JC -34", // 2F4
	"READ 11(a)", "GO/XQ", "?C#0 M", "JNC -33", // 2F8
	"RCR 13", "GO/XQ", "?C#0 MS", "JC -33", // 2FC
	"HPIL=C 4", "GO/XQ", "?A<C @R", "JNC -32", // 300
	"CLRF 1", "GO/XQ", "?A<C S&X", "JC -32", // 304
	"SETF 1", "GO/XQ", "?A<C R<-", "JNC -31", // 308
	"?FSET 1", "GO/XQ", "?A<C ALL", "JC -31", // 30C
	"LD@R C", "GO/XQ", "?A<C P-Q", "JNC -30", // 310
	"?R= 1", "GO/XQ", "?A<C XS", "JC -30", // 314
	"UNUSED", "GO/XQ", "?A<C M", "JNC -29", // 318
	"R= 1", "GO/XQ", "?A<C MS", "JC -29", // 31C
	"DSPTOG", "GO/XQ", "?A<B @R", "JNC -28", // 320
	"SELP C", "GO/XQ", "?A<B S&X", "JC -28", // 324
	"WRIT 12(b)", "GO/XQ", "?A<B R<-", "JNC -27", // 328
	"?FI 1 ?CRDR", "GO/XQ", "?A<B ALL", "JC -27", // 32C
	"FETCH S&X", "GO/XQ", "?A<B P-Q", "JNC -26", // 330
	"UNUSED", "GO/XQ", "?A<B XS", "JC -26", // 334
	"READ 12(b)", "GO/XQ", "?A<B M", "JNC -25", // 338
	"RCR 1", "GO/XQ", "?A<B MS", "JC -25", // 33C
	"HPIL=C 5", "GO/XQ", "?A#0 @R", "JNC -24", // 340
	"CLRF 12", "GO/XQ", "?A#0 S&X", "JC -24", // 344
	"SETF 12", "GO/XQ", "?A#0 R<-", "JNC -23", // 348
	"?FSET 12", "GO/XQ", "?A#0 ALL", "JC -23", // 34C
	"LD@R D", "GO/XQ", "?A#0 P-Q", "JNC -22", // 350
	"?R= 12", "GO/XQ", "?A#0 XS", "JC -22", // 354
	"ST=C", "GO/XQ", "?A#0 M", "JNC -21", // 358
	"R= 12", "GO/XQ", "?A#0 MS", "JC -21", // 35C
	"?C RTN", "GO/XQ", "?A#C @R", "JNC -20", // 360
	"SELP D", "GO/XQ", "?A#C S&X", "JC -20", // 364
	"WRIT 13(c)", "GO/XQ", "?A#C R<-", "JNC -19", // 368
	"?FI 12 ?ALM", "GO/XQ", "?A#C ALL", "JC -19", // 36C
	"C=C O RA", "GO/XQ", "?A#C P-Q", "JNC -18", // 370
	"UNUSED", "GO/XQ", "?A#C XS", "JC -18", // 374
	"READ 13(c)", "GO/XQ", "?A#C M", "JNC -17", // 378
	"RCR 12", "GO/XQ", "?A#C MS", "JC -17", // 37C
	"HPIL=C 6", "GO/XQ", "RSHFA @R", "JNC -16", // 380
	"CLRF 0", "GO/XQ", "RSHFA S&X", "JC -16", // 384
	"SETF 0", "GO/XQ", "RSHFA R<-", "JNC -15", // 388
	"?FSET 0", "GO/XQ", "RSHFA ALL", "JC -15", // 38C
	"LD@R E", "GO/XQ", "RSHFA P-Q", "JNC -14", // 390
	"?R= 0", "GO/XQ", "RSHFA XS", "JC -14", // 394
	"C=ST", "GO/XQ", "RSHFA M", "JNC -13", // 398
	"R= 0", "GO/XQ", "RSHFA MS", "JC -13", // 39C
	"?NC RTN", "GO/XQ", "RSHFB @R", "JNC -12", // 3A0
	"SELP E", "GO/XQ", "RSHFB S&X", "JC -12", // 3A4
	"WRIT 14(d)", "GO/XQ", "RSHFB R<-", "JNC -11", // 3A8
	"?FI 0 ?PBSY", "GO/XQ", "RSHFB ALL", "JC -11", // 3AC
	"C=C AND A", "GO/XQ", "RSHFB P-Q", "JNC -10", // 3B0
	"UNUSED", "GO/XQ", "RSHFB XS", "JC -10", // 3B4
	"READ 14(d)", "GO/XQ", "RSHFB M", "JNC -9", // 3B8
	"RCR 0", "GO/XQ", "RSHFB MS", "JC -9", // 3BC
	"HPIL=C 7", "GO/XQ", "RSHFC @R", "JNC -8", // 3C0
	"ST=0", "GO/XQ", "RSHFC S&X", "JC -8", // 3C4
	"CLRKEY", "GO/XQ", "RSHFC R<-", "JNC -7", // 3C8
	"?KEY", "GO/XQ", "RSHFC ALL", "JC -7", // 3CC
	"LD@R F", "GO/XQ", "RSHFC P-Q", "JNC -6", // 3D0
	"R=R-1", "GO/XQ", "RSHFC XS", "JC -6", // 3D4
	"C<>ST", "GO/XQ", "RSHFC M", "JNC -5", // 3D8
	"R=R+1", "GO/XQ", "RSHFC MS", "JC -5", // 3DC
	"RTN", "GO/XQ", "LSHFA @R", "JNC -4", // 3E0
	"SELP F", "GO/XQ", "LSHFA S&X", "JC -4", // 3E4
	"WRIT 15(e)", "GO/XQ", "LSHFA R<-", "JNC -3", // 3E8
	"?FI", "GO/XQ", "LSHFA ALL", "JC -3", // 3EC
	"PRPHSLCT", "GO/XQ", "LSHFA P-Q", "JNC -2", // 3F0
	"UNUSED", "GO/XQ", "LSHFA XS", "JC -2", // 3F4
	"READ 15(e)", "GO/XQ", "LSHFA M", "JNC -1", // 3F8
	"UNUSED", "GO/XQ", "LSHFA MS", "JC -1", // 3FC
}
