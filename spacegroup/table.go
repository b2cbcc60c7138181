// Package spacegroup - table.go
// The space-group catalog. The first 530 entries follow the order of
// the classic SgInfo/sgtbx tables (all settings listed in ITA plus the
// CCP4 alternates); the remaining entries cover additional non-standard
// settings seen in deposited structures. Entry positions are referenced
// by the alternate-name table and must not change.

package spacegroup

var tableMain = [554]SpaceGroup{
	{1, 1, "P 1", 0, "", "P 1", 0},                          // 0
	{2, 2, "P -1", 0, "", "-P 1", 0},                        // 1
	{3, 3, "P 1 2 1", 0, "b", "P 2y", 0},                    // 2
	{3, 1003, "P 1 1 2", 0, "c", "P 2", 1},                  // 3
	{3, 0, "P 2 1 1", 0, "a", "P 2x", 2},                    // 4
	{4, 4, "P 1 21 1", 0, "b", "P 2yb", 0},                  // 5
	{4, 1004, "P 1 1 21", 0, "c", "P 2c", 1},                // 6
	{4, 0, "P 21 1 1", 0, "a", "P 2xa", 2},                  // 7
	{5, 5, "C 1 2 1", 0, "b1", "C 2y", 0},                   // 8
	{5, 2005, "A 1 2 1", 0, "b2", "A 2y", 3},                // 9
	{5, 4005, "I 1 2 1", 0, "b3", "I 2y", 4},                // 10
	{5, 0, "A 1 1 2", 0, "c1", "A 2", 1},                    // 11
	{5, 1005, "B 1 1 2", 0, "c2", "B 2", 5},                 // 12
	{5, 0, "I 1 1 2", 0, "c3", "I 2", 6},                    // 13
	{5, 0, "B 2 1 1", 0, "a1", "B 2x", 2},                   // 14
	{5, 0, "C 2 1 1", 0, "a2", "C 2x", 7},                   // 15
	{5, 0, "I 2 1 1", 0, "a3", "I 2x", 8},                   // 16
	{6, 6, "P 1 m 1", 0, "b", "P -2y", 0},                   // 17
	{6, 1006, "P 1 1 m", 0, "c", "P -2", 1},                 // 18
	{6, 0, "P m 1 1", 0, "a", "P -2x", 2},                   // 19
	{7, 7, "P 1 c 1", 0, "b1", "P -2yc", 0},                 // 20
	{7, 0, "P 1 n 1", 0, "b2", "P -2yac", 9},                // 21
	{7, 0, "P 1 a 1", 0, "b3", "P -2ya", 3},                 // 22
	{7, 0, "P 1 1 a", 0, "c1", "P -2a", 1},                  // 23
	{7, 0, "P 1 1 n", 0, "c2", "P -2ab", 10},                // 24
	{7, 1007, "P 1 1 b", 0, "c3", "P -2b", 5},               // 25
	{7, 0, "P b 1 1", 0, "a1", "P -2xb", 2},                 // 26
	{7, 0, "P n 1 1", 0, "a2", "P -2xbc", 11},               // 27
	{7, 0, "P c 1 1", 0, "a3", "P -2xc", 7},                 // 28
	{8, 8, "C 1 m 1", 0, "b1", "C -2y", 0},                  // 29
	{8, 0, "A 1 m 1", 0, "b2", "A -2y", 3},                  // 30
	{8, 0, "I 1 m 1", 0, "b3", "I -2y", 4},                  // 31
	{8, 0, "A 1 1 m", 0, "c1", "A -2", 1},                   // 32
	{8, 1008, "B 1 1 m", 0, "c2", "B -2", 5},                // 33
	{8, 0, "I 1 1 m", 0, "c3", "I -2", 6},                   // 34
	{8, 0, "B m 1 1", 0, "a1", "B -2x", 2},                  // 35
	{8, 0, "C m 1 1", 0, "a2", "C -2x", 7},                  // 36
	{8, 0, "I m 1 1", 0, "a3", "I -2x", 8},                  // 37
	{9, 9, "C 1 c 1", 0, "b1", "C -2yc", 0},                 // 38
	{9, 0, "A 1 n 1", 0, "b2", "A -2yab", 12},               // 39
	{9, 0, "I 1 a 1", 0, "b3", "I -2ya", 13},                // 40
	{9, 0, "A 1 a 1", 0, "-b1", "A -2ya", 3},                // 41
	{9, 0, "C 1 n 1", 0, "-b2", "C -2yac", 14},              // 42
	{9, 0, "I 1 c 1", 0, "-b3", "I -2yc", 4},                // 43
	{9, 0, "A 1 1 a", 0, "c1", "A -2a", 1},                  // 44
	{9, 0, "B 1 1 n", 0, "c2", "B -2ab", 15},                // 45
	{9, 0, "I 1 1 b", 0, "c3", "I -2b", 16},                 // 46
	{9, 1009, "B 1 1 b", 0, "-c1", "B -2b", 5},              // 47
	{9, 0, "A 1 1 n", 0, "-c2", "A -2ab", 10},               // 48
	{9, 0, "I 1 1 a", 0, "-c3", "I -2a", 6},                 // 49
	{9, 0, "B b 1 1", 0, "a1", "B -2xb", 2},                 // 50
	{9, 0, "C n 1 1", 0, "a2", "C -2xac", 17},               // 51
	{9, 0, "I c 1 1", 0, "a3", "I -2xc", 18},                // 52
	{9, 0, "C c 1 1", 0, "-a1", "C -2xc", 7},                // 53
	{9, 0, "B n 1 1", 0, "-a2", "B -2xab", 11},              // 54
	{9, 0, "I b 1 1", 0, "-a3", "I -2xb", 8},                // 55
	{10, 10, "P 1 2/m 1", 0, "b", "-P 2y", 0},               // 56
	{10, 1010, "P 1 1 2/m", 0, "c", "-P 2", 1},              // 57
	{10, 0, "P 2/m 1 1", 0, "a", "-P 2x", 2},                // 58
	{11, 11, "P 1 21/m 1", 0, "b", "-P 2yb", 0},             // 59
	{11, 1011, "P 1 1 21/m", 0, "c", "-P 2c", 1},            // 60
	{11, 0, "P 21/m 1 1", 0, "a", "-P 2xa", 2},              // 61
	{12, 12, "C 1 2/m 1", 0, "b1", "-C 2y", 0},              // 62
	{12, 0, "A 1 2/m 1", 0, "b2", "-A 2y", 3},               // 63
	{12, 0, "I 1 2/m 1", 0, "b3", "-I 2y", 4},               // 64
	{12, 0, "A 1 1 2/m", 0, "c1", "-A 2", 1},                // 65
	{12, 1012, "B 1 1 2/m", 0, "c2", "-B 2", 5},             // 66
	{12, 0, "I 1 1 2/m", 0, "c3", "-I 2", 6},                // 67
	{12, 0, "B 2/m 1 1", 0, "a1", "-B 2x", 2},               // 68
	{12, 0, "C 2/m 1 1", 0, "a2", "-C 2x", 7},               // 69
	{12, 0, "I 2/m 1 1", 0, "a3", "-I 2x", 8},               // 70
	{13, 13, "P 1 2/c 1", 0, "b1", "-P 2yc", 0},             // 71
	{13, 0, "P 1 2/n 1", 0, "b2", "-P 2yac", 9},             // 72
	{13, 0, "P 1 2/a 1", 0, "b3", "-P 2ya", 3},              // 73
	{13, 0, "P 1 1 2/a", 0, "c1", "-P 2a", 1},               // 74
	{13, 0, "P 1 1 2/n", 0, "c2", "-P 2ab", 10},             // 75
	{13, 1013, "P 1 1 2/b", 0, "c3", "-P 2b", 5},            // 76
	{13, 0, "P 2/b 1 1", 0, "a1", "-P 2xb", 2},              // 77
	{13, 0, "P 2/n 1 1", 0, "a2", "-P 2xbc", 11},            // 78
	{13, 0, "P 2/c 1 1", 0, "a3", "-P 2xc", 7},              // 79
	{14, 14, "P 1 21/c 1", 0, "b1", "-P 2ybc", 0},           // 80
	{14, 2014, "P 1 21/n 1", 0, "b2", "-P 2yn", 9},          // 81
	{14, 3014, "P 1 21/a 1", 0, "b3", "-P 2yab", 3},         // 82
	{14, 0, "P 1 1 21/a", 0, "c1", "-P 2ac", 1},             // 83
	{14, 0, "P 1 1 21/n", 0, "c2", "-P 2n", 10},             // 84
	{14, 1014, "P 1 1 21/b", 0, "c3", "-P 2bc", 5},          // 85
	{14, 0, "P 21/b 1 1", 0, "a1", "-P 2xab", 2},            // 86
	{14, 0, "P 21/n 1 1", 0, "a2", "-P 2xn", 11},            // 87
	{14, 0, "P 21/c 1 1", 0, "a3", "-P 2xac", 7},            // 88
	{15, 15, "C 1 2/c 1", 0, "b1", "-C 2yc", 0},             // 89
	{15, 0, "A 1 2/n 1", 0, "b2", "-A 2yab", 12},            // 90
	{15, 0, "I 1 2/a 1", 0, "b3", "-I 2ya", 13},             // 91
	{15, 0, "A 1 2/a 1", 0, "-b1", "-A 2ya", 3},             // 92
	{15, 0, "C 1 2/n 1", 0, "-b2", "-C 2yac", 19},           // 93
	{15, 0, "I 1 2/c 1", 0, "-b3", "-I 2yc", 4},             // 94
	{15, 0, "A 1 1 2/a", 0, "c1", "-A 2a", 1},               // 95
	{15, 0, "B 1 1 2/n", 0, "c2", "-B 2ab", 15},             // 96
	{15, 0, "I 1 1 2/b", 0, "c3", "-I 2b", 16},              // 97
	{15, 1015, "B 1 1 2/b", 0, "-c1", "-B 2b", 5},           // 98
	{15, 0, "A 1 1 2/n", 0, "-c2", "-A 2ab", 10},            // 99
	{15, 0, "I 1 1 2/a", 0, "-c3", "-I 2a", 6},              // 100
	{15, 0, "B 2/b 1 1", 0, "a1", "-B 2xb", 2},              // 101
	{15, 0, "C 2/n 1 1", 0, "a2", "-C 2xac", 17},            // 102
	{15, 0, "I 2/c 1 1", 0, "a3", "-I 2xc", 18},             // 103
	{15, 0, "C 2/c 1 1", 0, "-a1", "-C 2xc", 7},             // 104
	{15, 0, "B 2/n 1 1", 0, "-a2", "-B 2xab", 11},           // 105
	{15, 0, "I 2/b 1 1", 0, "-a3", "-I 2xb", 8},             // 106
	{16, 16, "P 2 2 2", 0, "", "P 2 2", 0},                  // 107
	{17, 17, "P 2 2 21", 0, "", "P 2c 2", 0},                // 108
	{17, 1017, "P 21 2 2", 0, "cab", "P 2a 2a", 1},          // 109
	{17, 2017, "P 2 21 2", 0, "bca", "P 2 2b", 2},           // 110
	{18, 18, "P 21 21 2", 0, "", "P 2 2ab", 0},              // 111
	{18, 3018, "P 2 21 21", 0, "cab", "P 2bc 2", 1},         // 112
	{18, 2018, "P 21 2 21", 0, "bca", "P 2ac 2ac", 2},       // 113
	{19, 19, "P 21 21 21", 0, "", "P 2ac 2ab", 0},           // 114
	{20, 20, "C 2 2 21", 0, "", "C 2c 2", 0},                // 115
	{20, 0, "A 21 2 2", 0, "cab", "A 2a 2a", 1},             // 116
	{20, 0, "B 2 21 2", 0, "bca", "B 2 2b", 2},              // 117
	{21, 21, "C 2 2 2", 0, "", "C 2 2", 0},                  // 118
	{21, 0, "A 2 2 2", 0, "cab", "A 2 2", 1},                // 119
	{21, 0, "B 2 2 2", 0, "bca", "B 2 2", 2},                // 120
	{22, 22, "F 2 2 2", 0, "", "F 2 2", 0},                  // 121
	{23, 23, "I 2 2 2", 0, "", "I 2 2", 0},                  // 122
	{24, 24, "I 21 21 21", 0, "", "I 2b 2c", 0},             // 123
	{25, 25, "P m m 2", 0, "", "P 2 -2", 0},                 // 124
	{25, 0, "P 2 m m", 0, "cab", "P -2 2", 1},               // 125
	{25, 0, "P m 2 m", 0, "bca", "P -2 -2", 2},              // 126
	{26, 26, "P m c 21", 0, "", "P 2c -2", 0},               // 127
	{26, 0, "P c m 21", 0, "ba-c", "P 2c -2c", 7},           // 128
	{26, 0, "P 21 m a", 0, "cab", "P -2a 2a", 1},            // 129
	{26, 0, "P 21 a m", 0, "-cba", "P -2 2a", 3},            // 130
	{26, 0, "P b 21 m", 0, "bca", "P -2 -2b", 2},            // 131
	{26, 0, "P m 21 b", 0, "a-cb", "P -2b -2", 5},           // 132
	{27, 27, "P c c 2", 0, "", "P 2 -2c", 0},                // 133
	{27, 0, "P 2 a a", 0, "cab", "P -2a 2", 1},              // 134
	{27, 0, "P b 2 b", 0, "bca", "P -2b -2b", 2},            // 135
	{28, 28, "P m a 2", 0, "", "P 2 -2a", 0},                // 136
	{28, 0, "P b m 2", 0, "ba-c", "P 2 -2b", 7},             // 137
	{28, 0, "P 2 m b", 0, "cab", "P -2b 2", 1},              // 138
	{28, 0, "P 2 c m", 0, "-cba", "P -2c 2", 3},             // 139
	{28, 0, "P c 2 m", 0, "bca", "P -2c -2c", 2},            // 140
	{28, 0, "P m 2 a", 0, "a-cb", "P -2a -2a", 5},           // 141
	{29, 29, "P c a 21", 0, "", "P 2c -2ac", 0},             // 142
	{29, 0, "P b c 21", 0, "ba-c", "P 2c -2b", 7},           // 143
	{29, 0, "P 21 a b", 0, "cab", "P -2b 2a", 1},            // 144
	{29, 0, "P 21 c a", 0, "-cba", "P -2ac 2a", 3},          // 145
	{29, 0, "P c 21 b", 0, "bca", "P -2bc -2c", 2},          // 146
	{29, 0, "P b 21 a", 0, "a-cb", "P -2a -2ab", 5},         // 147
	{30, 30, "P n c 2", 0, "", "P 2 -2bc", 0},               // 148
	{30, 0, "P c n 2", 0, "ba-c", "P 2 -2ac", 7},            // 149
	{30, 0, "P 2 n a", 0, "cab", "P -2ac 2", 1},             // 150
	{30, 0, "P 2 a n", 0, "-cba", "P -2ab 2", 3},            // 151
	{30, 0, "P b 2 n", 0, "bca", "P -2ab -2ab", 2},          // 152
	{30, 0, "P n 2 b", 0, "a-cb", "P -2bc -2bc", 5},         // 153
	{31, 31, "P m n 21", 0, "", "P 2ac -2", 0},              // 154
	{31, 0, "P n m 21", 0, "ba-c", "P 2bc -2bc", 7},         // 155
	{31, 0, "P 21 m n", 0, "cab", "P -2ab 2ab", 1},          // 156
	{31, 0, "P 21 n m", 0, "-cba", "P -2 2ac", 3},           // 157
	{31, 0, "P n 21 m", 0, "bca", "P -2 -2bc", 2},           // 158
	{31, 0, "P m 21 n", 0, "a-cb", "P -2ab -2", 5},          // 159
	{32, 32, "P b a 2", 0, "", "P 2 -2ab", 0},               // 160
	{32, 0, "P 2 c b", 0, "cab", "P -2bc 2", 1},             // 161
	{32, 0, "P c 2 a", 0, "bca", "P -2ac -2ac", 2},          // 162
	{33, 33, "P n a 21", 0, "", "P 2c -2n", 0},              // 163
	{33, 0, "P b n 21", 0, "ba-c", "P 2c -2ab", 7},          // 164
	{33, 0, "P 21 n b", 0, "cab", "P -2bc 2a", 1},           // 165
	{33, 0, "P 21 c n", 0, "-cba", "P -2n 2a", 3},           // 166
	{33, 0, "P c 21 n", 0, "bca", "P -2n -2ac", 2},          // 167
	{33, 0, "P n 21 a", 0, "a-cb", "P -2ac -2n", 5},         // 168
	{34, 34, "P n n 2", 0, "", "P 2 -2n", 0},                // 169
	{34, 0, "P 2 n n", 0, "cab", "P -2n 2", 1},              // 170
	{34, 0, "P n 2 n", 0, "bca", "P -2n -2n", 2},            // 171
	{35, 35, "C m m 2", 0, "", "C 2 -2", 0},                 // 172
	{35, 0, "A 2 m m", 0, "cab", "A -2 2", 1},               // 173
	{35, 0, "B m 2 m", 0, "bca", "B -2 -2", 2},              // 174
	{36, 36, "C m c 21", 0, "", "C 2c -2", 0},               // 175
	{36, 0, "C c m 21", 0, "ba-c", "C 2c -2c", 7},           // 176
	{36, 0, "A 21 m a", 0, "cab", "A -2a 2a", 1},            // 177
	{36, 0, "A 21 a m", 0, "-cba", "A -2 2a", 3},            // 178
	{36, 0, "B b 21 m", 0, "bca", "B -2 -2b", 2},            // 179
	{36, 0, "B m 21 b", 0, "a-cb", "B -2b -2", 5},           // 180
	{37, 37, "C c c 2", 0, "", "C 2 -2c", 0},                // 181
	{37, 0, "A 2 a a", 0, "cab", "A -2a 2", 1},              // 182
	{37, 0, "B b 2 b", 0, "bca", "B -2b -2b", 2},            // 183
	{38, 38, "A m m 2", 0, "", "A 2 -2", 0},                 // 184
	{38, 0, "B m m 2", 0, "ba-c", "B 2 -2", 7},              // 185
	{38, 0, "B 2 m m", 0, "cab", "B -2 2", 1},               // 186
	{38, 0, "C 2 m m", 0, "-cba", "C -2 2", 3},              // 187
	{38, 0, "C m 2 m", 0, "bca", "C -2 -2", 2},              // 188
	{38, 0, "A m 2 m", 0, "a-cb", "A -2 -2", 5},             // 189
	{39, 39, "A b m 2", 0, "", "A 2 -2b", 0},                // 190
	{39, 0, "B m a 2", 0, "ba-c", "B 2 -2a", 7},             // 191
	{39, 0, "B 2 c m", 0, "cab", "B -2a 2", 1},              // 192
	{39, 0, "C 2 m b", 0, "-cba", "C -2a 2", 3},             // 193
	{39, 0, "C m 2 a", 0, "bca", "C -2a -2a", 2},            // 194
	{39, 0, "A c 2 m", 0, "a-cb", "A -2b -2b", 5},           // 195
	{40, 40, "A m a 2", 0, "", "A 2 -2a", 0},                // 196
	{40, 0, "B b m 2", 0, "ba-c", "B 2 -2b", 7},             // 197
	{40, 0, "B 2 m b", 0, "cab", "B -2b 2", 1},              // 198
	{40, 0, "C 2 c m", 0, "-cba", "C -2c 2", 3},             // 199
	{40, 0, "C c 2 m", 0, "bca", "C -2c -2c", 2},            // 200
	{40, 0, "A m 2 a", 0, "a-cb", "A -2a -2a", 5},           // 201
	{41, 41, "A b a 2", 0, "", "A 2 -2ab", 0},               // 202
	{41, 0, "B b a 2", 0, "ba-c", "B 2 -2ab", 7},            // 203
	{41, 0, "B 2 c b", 0, "cab", "B -2ab 2", 1},             // 204
	{41, 0, "C 2 c b", 0, "-cba", "C -2ac 2", 3},            // 205
	{41, 0, "C c 2 a", 0, "bca", "C -2ac -2ac", 2},          // 206
	{41, 0, "A c 2 a", 0, "a-cb", "A -2ab -2ab", 5},         // 207
	{42, 42, "F m m 2", 0, "", "F 2 -2", 0},                 // 208
	{42, 0, "F 2 m m", 0, "cab", "F -2 2", 1},               // 209
	{42, 0, "F m 2 m", 0, "bca", "F -2 -2", 2},              // 210
	{43, 43, "F d d 2", 0, "", "F 2 -2d", 0},                // 211
	{43, 0, "F 2 d d", 0, "cab", "F -2d 2", 1},              // 212
	{43, 0, "F d 2 d", 0, "bca", "F -2d -2d", 2},            // 213
	{44, 44, "I m m 2", 0, "", "I 2 -2", 0},                 // 214
	{44, 0, "I 2 m m", 0, "cab", "I -2 2", 1},               // 215
	{44, 0, "I m 2 m", 0, "bca", "I -2 -2", 2},              // 216
	{45, 45, "I b a 2", 0, "", "I 2 -2c", 0},                // 217
	{45, 0, "I 2 c b", 0, "cab", "I -2a 2", 1},              // 218
	{45, 0, "I c 2 a", 0, "bca", "I -2b -2b", 2},            // 219
	{46, 46, "I m a 2", 0, "", "I 2 -2a", 0},                // 220
	{46, 0, "I b m 2", 0, "ba-c", "I 2 -2b", 7},             // 221
	{46, 0, "I 2 m b", 0, "cab", "I -2b 2", 1},              // 222
	{46, 0, "I 2 c m", 0, "-cba", "I -2c 2", 3},             // 223
	{46, 0, "I c 2 m", 0, "bca", "I -2c -2c", 2},            // 224
	{46, 0, "I m 2 a", 0, "a-cb", "I -2a -2a", 5},           // 225
	{47, 47, "P m m m", 0, "", "-P 2 2", 0},                 // 226
	{48, 48, "P n n n", '1', "", "P 2 2 -1n", 20},           // 227
	{48, 0, "P n n n", '2', "", "-P 2ab 2bc", 0},            // 228
	{49, 49, "P c c m", 0, "", "-P 2 2c", 0},                // 229
	{49, 0, "P m a a", 0, "cab", "-P 2a 2", 1},              // 230
	{49, 0, "P b m b", 0, "bca", "-P 2b 2b", 2},             // 231
	{50, 50, "P b a n", '1', "", "P 2 2 -1ab", 21},          // 232
	{50, 0, "P b a n", '2', "", "-P 2ab 2b", 0},             // 233
	{50, 0, "P n c b", '1', "cab", "P 2 2 -1bc", 22},        // 234
	{50, 0, "P n c b", '2', "cab", "-P 2b 2bc", 1},          // 235
	{50, 0, "P c n a", '1', "bca", "P 2 2 -1ac", 23},        // 236
	{50, 0, "P c n a", '2', "bca", "-P 2a 2c", 2},           // 237
	{51, 51, "P m m a", 0, "", "-P 2a 2a", 0},               // 238
	{51, 0, "P m m b", 0, "ba-c", "-P 2b 2", 7},             // 239
	{51, 0, "P b m m", 0, "cab", "-P 2 2b", 1},              // 240
	{51, 0, "P c m m", 0, "-cba", "-P 2c 2c", 3},            // 241
	{51, 0, "P m c m", 0, "bca", "-P 2c 2", 2},              // 242
	{51, 0, "P m a m", 0, "a-cb", "-P 2 2a", 5},             // 243
	{52, 52, "P n n a", 0, "", "-P 2a 2bc", 0},              // 244
	{52, 0, "P n n b", 0, "ba-c", "-P 2b 2n", 7},            // 245
	{52, 0, "P b n n", 0, "cab", "-P 2n 2b", 1},             // 246
	{52, 0, "P c n n", 0, "-cba", "-P 2ab 2c", 3},           // 247
	{52, 0, "P n c n", 0, "bca", "-P 2ab 2n", 2},            // 248
	{52, 0, "P n a n", 0, "a-cb", "-P 2n 2bc", 5},           // 249
	{53, 53, "P m n a", 0, "", "-P 2ac 2", 0},               // 250
	{53, 0, "P n m b", 0, "ba-c", "-P 2bc 2bc", 7},          // 251
	{53, 0, "P b m n", 0, "cab", "-P 2ab 2ab", 1},           // 252
	{53, 0, "P c n m", 0, "-cba", "-P 2 2ac", 3},            // 253
	{53, 0, "P n c m", 0, "bca", "-P 2 2bc", 2},             // 254
	{53, 0, "P m a n", 0, "a-cb", "-P 2ab 2", 5},            // 255
	{54, 54, "P c c a", 0, "", "-P 2a 2ac", 0},              // 256
	{54, 0, "P c c b", 0, "ba-c", "-P 2b 2c", 7},            // 257
	{54, 0, "P b a a", 0, "cab", "-P 2a 2b", 1},             // 258
	{54, 0, "P c a a", 0, "-cba", "-P 2ac 2c", 3},           // 259
	{54, 0, "P b c b", 0, "bca", "-P 2bc 2b", 2},            // 260
	{54, 0, "P b a b", 0, "a-cb", "-P 2b 2ab", 5},           // 261
	{55, 55, "P b a m", 0, "", "-P 2 2ab", 0},               // 262
	{55, 0, "P m c b", 0, "cab", "-P 2bc 2", 1},             // 263
	{55, 0, "P c m a", 0, "bca", "-P 2ac 2ac", 2},           // 264
	{56, 56, "P c c n", 0, "", "-P 2ab 2ac", 0},             // 265
	{56, 0, "P n a a", 0, "cab", "-P 2ac 2bc", 1},           // 266
	{56, 0, "P b n b", 0, "bca", "-P 2bc 2ab", 2},           // 267
	{57, 57, "P b c m", 0, "", "-P 2c 2b", 0},               // 268
	{57, 0, "P c a m", 0, "ba-c", "-P 2c 2ac", 7},           // 269
	{57, 0, "P m c a", 0, "cab", "-P 2ac 2a", 1},            // 270
	{57, 0, "P m a b", 0, "-cba", "-P 2b 2a", 3},            // 271
	{57, 0, "P b m a", 0, "bca", "-P 2a 2ab", 2},            // 272
	{57, 0, "P c m b", 0, "a-cb", "-P 2bc 2c", 5},           // 273
	{58, 58, "P n n m", 0, "", "-P 2 2n", 0},                // 274
	{58, 0, "P m n n", 0, "cab", "-P 2n 2", 1},              // 275
	{58, 0, "P n m n", 0, "bca", "-P 2n 2n", 2},             // 276
	{59, 59, "P m m n", '1', "", "P 2 2ab -1ab", 21},        // 277
	{59, 1059, "P m m n", '2', "", "-P 2ab 2a", 0},          // 278
	{59, 0, "P n m m", '1', "cab", "P 2bc 2 -1bc", 22},      // 279
	{59, 0, "P n m m", '2', "cab", "-P 2c 2bc", 1},          // 280
	{59, 0, "P m n m", '1', "bca", "P 2ac 2ac -1ac", 23},    // 281
	{59, 0, "P m n m", '2', "bca", "-P 2c 2a", 2},           // 282
	{60, 60, "P b c n", 0, "", "-P 2n 2ab", 0},              // 283
	{60, 0, "P c a n", 0, "ba-c", "-P 2n 2c", 7},            // 284
	{60, 0, "P n c a", 0, "cab", "-P 2a 2n", 1},             // 285
	{60, 0, "P n a b", 0, "-cba", "-P 2bc 2n", 3},           // 286
	{60, 0, "P b n a", 0, "bca", "-P 2ac 2b", 2},            // 287
	{60, 0, "P c n b", 0, "a-cb", "-P 2b 2ac", 5},           // 288
	{61, 61, "P b c a", 0, "", "-P 2ac 2ab", 0},             // 289
	{61, 0, "P c a b", 0, "ba-c", "-P 2bc 2ac", 3},          // 290
	{62, 62, "P n m a", 0, "", "-P 2ac 2n", 0},              // 291
	{62, 0, "P m n b", 0, "ba-c", "-P 2bc 2a", 7},           // 292
	{62, 0, "P b n m", 0, "cab", "-P 2c 2ab", 1},            // 293
	{62, 0, "P c m n", 0, "-cba", "-P 2n 2ac", 3},           // 294
	{62, 0, "P m c n", 0, "bca", "-P 2n 2a", 2},             // 295
	{62, 0, "P n a m", 0, "a-cb", "-P 2c 2n", 5},            // 296
	{63, 63, "C m c m", 0, "", "-C 2c 2", 0},                // 297
	{63, 0, "C c m m", 0, "ba-c", "-C 2c 2c", 7},            // 298
	{63, 0, "A m m a", 0, "cab", "-A 2a 2a", 1},             // 299
	{63, 0, "A m a m", 0, "-cba", "-A 2 2a", 3},             // 300
	{63, 0, "B b m m", 0, "bca", "-B 2 2b", 2},              // 301
	{63, 0, "B m m b", 0, "a-cb", "-B 2b 2", 5},             // 302
	{64, 64, "C m c a", 0, "", "-C 2ac 2", 0},               // 303
	{64, 0, "C c m b", 0, "ba-c", "-C 2ac 2ac", 7},          // 304
	{64, 0, "A b m a", 0, "cab", "-A 2ab 2ab", 1},           // 305
	{64, 0, "A c a m", 0, "-cba", "-A 2 2ab", 3},            // 306
	{64, 0, "B b c m", 0, "bca", "-B 2 2ab", 2},             // 307
	{64, 0, "B m a b", 0, "a-cb", "-B 2ab 2", 5},            // 308
	{65, 65, "C m m m", 0, "", "-C 2 2", 0},                 // 309
	{65, 0, "A m m m", 0, "cab", "-A 2 2", 1},               // 310
	{65, 0, "B m m m", 0, "bca", "-B 2 2", 2},               // 311
	{66, 66, "C c c m", 0, "", "-C 2 2c", 0},                // 312
	{66, 0, "A m a a", 0, "cab", "-A 2a 2", 1},              // 313
	{66, 0, "B b m b", 0, "bca", "-B 2b 2b", 2},             // 314
	{67, 67, "C m m a", 0, "", "-C 2a 2", 0},                // 315
	{67, 0, "C m m b", 0, "ba-c", "-C 2a 2a", 14},           // 316
	{67, 0, "A b m m", 0, "cab", "-A 2b 2b", 1},             // 317
	{67, 0, "A c m m", 0, "-cba", "-A 2 2b", 3},             // 318
	{67, 0, "B m c m", 0, "bca", "-B 2 2a", 2},              // 319
	{67, 0, "B m a m", 0, "a-cb", "-B 2a 2", 5},             // 320
	{68, 68, "C c c a", '1', "", "C 2 2 -1ac", 24},          // 321
	{68, 0, "C c c a", '2', "", "-C 2a 2ac", 0},             // 322
	{68, 0, "C c c b", '1', "ba-c", "C 2 2 -1ac", 24},       // 323
	{68, 0, "C c c b", '2', "ba-c", "-C 2a 2c", 21},         // 324
	{68, 0, "A b a a", '1', "cab", "A 2 2 -1ab", 25},        // 325
	{68, 0, "A b a a", '2', "cab", "-A 2a 2b", 1},           // 326
	{68, 0, "A c a a", '1', "-cba", "A 2 2 -1ab", 25},       // 327
	{68, 0, "A c a a", '2', "-cba", "-A 2ab 2b", 3},         // 328
	{68, 0, "B b c b", '1', "bca", "B 2 2 -1ab", 26},        // 329
	{68, 0, "B b c b", '2', "bca", "-B 2ab 2b", 2},          // 330
	{68, 0, "B b a b", '1', "a-cb", "B 2 2 -1ab", 26},       // 331
	{68, 0, "B b a b", '2', "a-cb", "-B 2b 2ab", 5},         // 332
	{69, 69, "F m m m", 0, "", "-F 2 2", 0},                 // 333
	{70, 70, "F d d d", '1', "", "F 2 2 -1d", 27},           // 334
	{70, 0, "F d d d", '2', "", "-F 2uv 2vw", 0},            // 335
	{71, 71, "I m m m", 0, "", "-I 2 2", 0},                 // 336
	{72, 72, "I b a m", 0, "", "-I 2 2c", 0},                // 337
	{72, 0, "I m c b", 0, "cab", "-I 2a 2", 1},              // 338
	{72, 0, "I c m a", 0, "bca", "-I 2b 2b", 2},             // 339
	{73, 73, "I b c a", 0, "", "-I 2b 2c", 0},               // 340
	{73, 0, "I c a b", 0, "ba-c", "-I 2a 2b", 28},           // 341
	{74, 74, "I m m a", 0, "", "-I 2b 2", 0},                // 342
	{74, 0, "I m m b", 0, "ba-c", "-I 2a 2a", 28},           // 343
	{74, 0, "I b m m", 0, "cab", "-I 2c 2c", 1},             // 344
	{74, 0, "I c m m", 0, "-cba", "-I 2 2b", 3},             // 345
	{74, 0, "I m c m", 0, "bca", "-I 2 2a", 2},              // 346
	{74, 0, "I m a m", 0, "a-cb", "-I 2c 2", 5},             // 347
	{75, 75, "P 4", 0, "", "P 4", 0},                        // 348
	{76, 76, "P 41", 0, "", "P 4w", 0},                      // 349
	{77, 77, "P 42", 0, "", "P 4c", 0},                      // 350
	{78, 78, "P 43", 0, "", "P 4cw", 0},                     // 351
	{79, 79, "I 4", 0, "", "I 4", 0},                        // 352
	{80, 80, "I 41", 0, "", "I 4bw", 0},                     // 353
	{81, 81, "P -4", 0, "", "P -4", 0},                      // 354
	{82, 82, "I -4", 0, "", "I -4", 0},                      // 355
	{83, 83, "P 4/m", 0, "", "-P 4", 0},                     // 356
	{84, 84, "P 42/m", 0, "", "-P 4c", 0},                   // 357
	{85, 85, "P 4/n", '1', "", "P 4ab -1ab", 29},            // 358
	{85, 0, "P 4/n", '2', "", "-P 4a", 0},                   // 359
	{86, 86, "P 42/n", '1', "", "P 4n -1n", 30},             // 360
	{86, 0, "P 42/n", '2', "", "-P 4bc", 0},                 // 361
	{87, 87, "I 4/m", 0, "", "-I 4", 0},                     // 362
	{88, 88, "I 41/a", '1', "", "I 4bw -1bw", 31},           // 363
	{88, 0, "I 41/a", '2', "", "-I 4ad", 0},                 // 364
	{89, 89, "P 4 2 2", 0, "", "P 4 2", 0},                  // 365
	{90, 90, "P 4 21 2", 0, "", "P 4ab 2ab", 0},             // 366
	{91, 91, "P 41 2 2", 0, "", "P 4w 2c", 0},               // 367
	{92, 92, "P 41 21 2", 0, "", "P 4abw 2nw", 0},           // 368
	{93, 93, "P 42 2 2", 0, "", "P 4c 2", 0},                // 369
	{94, 94, "P 42 21 2", 0, "", "P 4n 2n", 0},              // 370
	{95, 95, "P 43 2 2", 0, "", "P 4cw 2c", 0},              // 371
	{96, 96, "P 43 21 2", 0, "", "P 4nw 2abw", 0},           // 372
	{97, 97, "I 4 2 2", 0, "", "I 4 2", 0},                  // 373
	{98, 98, "I 41 2 2", 0, "", "I 4bw 2bw", 0},             // 374
	{99, 99, "P 4 m m", 0, "", "P 4 -2", 0},                 // 375
	{100, 100, "P 4 b m", 0, "", "P 4 -2ab", 0},             // 376
	{101, 101, "P 42 c m", 0, "", "P 4c -2c", 0},            // 377
	{102, 102, "P 42 n m", 0, "", "P 4n -2n", 0},            // 378
	{103, 103, "P 4 c c", 0, "", "P 4 -2c", 0},              // 379
	{104, 104, "P 4 n c", 0, "", "P 4 -2n", 0},              // 380
	{105, 105, "P 42 m c", 0, "", "P 4c -2", 0},             // 381
	{106, 106, "P 42 b c", 0, "", "P 4c -2ab", 0},           // 382
	{107, 107, "I 4 m m", 0, "", "I 4 -2", 0},               // 383
	{108, 108, "I 4 c m", 0, "", "I 4 -2c", 0},              // 384
	{109, 109, "I 41 m d", 0, "", "I 4bw -2", 0},            // 385
	{110, 110, "I 41 c d", 0, "", "I 4bw -2c", 0},           // 386
	{111, 111, "P -4 2 m", 0, "", "P -4 2", 0},              // 387
	{112, 112, "P -4 2 c", 0, "", "P -4 2c", 0},             // 388
	{113, 113, "P -4 21 m", 0, "", "P -4 2ab", 0},           // 389
	{114, 114, "P -4 21 c", 0, "", "P -4 2n", 0},            // 390
	{115, 115, "P -4 m 2", 0, "", "P -4 -2", 0},             // 391
	{116, 116, "P -4 c 2", 0, "", "P -4 -2c", 0},            // 392
	{117, 117, "P -4 b 2", 0, "", "P -4 -2ab", 0},           // 393
	{118, 118, "P -4 n 2", 0, "", "P -4 -2n", 0},            // 394
	{119, 119, "I -4 m 2", 0, "", "I -4 -2", 0},             // 395
	{120, 120, "I -4 c 2", 0, "", "I -4 -2c", 0},            // 396
	{121, 121, "I -4 2 m", 0, "", "I -4 2", 0},              // 397
	{122, 122, "I -4 2 d", 0, "", "I -4 2bw", 0},            // 398
	{123, 123, "P 4/m m m", 0, "", "-P 4 2", 0},             // 399
	{124, 124, "P 4/m c c", 0, "", "-P 4 2c", 0},            // 400
	{125, 125, "P 4/n b m", '1', "", "P 4 2 -1ab", 21},      // 401
	{125, 0, "P 4/n b m", '2', "", "-P 4a 2b", 0},           // 402
	{126, 126, "P 4/n n c", '1', "", "P 4 2 -1n", 20},       // 403
	{126, 0, "P 4/n n c", '2', "", "-P 4a 2bc", 0},          // 404
	{127, 127, "P 4/m b m", 0, "", "-P 4 2ab", 0},           // 405
	{128, 128, "P 4/m n c", 0, "", "-P 4 2n", 0},            // 406
	{129, 129, "P 4/n m m", '1', "", "P 4ab 2ab -1ab", 29},  // 407
	{129, 0, "P 4/n m m", '2', "", "-P 4a 2a", 0},           // 408
	{130, 130, "P 4/n c c", '1', "", "P 4ab 2n -1ab", 29},   // 409
	{130, 0, "P 4/n c c", '2', "", "-P 4a 2ac", 0},          // 410
	{131, 131, "P 42/m m c", 0, "", "-P 4c 2", 0},           // 411
	{132, 132, "P 42/m c m", 0, "", "-P 4c 2c", 0},          // 412
	{133, 133, "P 42/n b c", '1', "", "P 4n 2c -1n", 32},    // 413
	{133, 0, "P 42/n b c", '2', "", "-P 4ac 2b", 0},         // 414
	{134, 134, "P 42/n n m", '1', "", "P 4n 2 -1n", 33},     // 415
	{134, 0, "P 42/n n m", '2', "", "-P 4ac 2bc", 0},        // 416
	{135, 135, "P 42/m b c", 0, "", "-P 4c 2ab", 0},         // 417
	{136, 136, "P 42/m n m", 0, "", "-P 4n 2n", 0},          // 418
	{137, 137, "P 42/n m c", '1', "", "P 4n 2n -1n", 32},    // 419
	{137, 0, "P 42/n m c", '2', "", "-P 4ac 2a", 0},         // 420
	{138, 138, "P 42/n c m", '1', "", "P 4n 2ab -1n", 33},   // 421
	{138, 0, "P 42/n c m", '2', "", "-P 4ac 2ac", 0},        // 422
	{139, 139, "I 4/m m m", 0, "", "-I 4 2", 0},             // 423
	{140, 140, "I 4/m c m", 0, "", "-I 4 2c", 0},            // 424
	{141, 141, "I 41/a m d", '1', "", "I 4bw 2bw -1bw", 34}, // 425
	{141, 0, "I 41/a m d", '2', "", "-I 4bd 2", 0},          // 426
	{142, 142, "I 41/a c d", '1', "", "I 4bw 2aw -1bw", 35}, // 427
	{142, 0, "I 41/a c d", '2', "", "-I 4bd 2c", 0},         // 428
	{143, 143, "P 3", 0, "", "P 3", 0},                      // 429
	{144, 144, "P 31", 0, "", "P 31", 0},                    // 430
	{145, 145, "P 32", 0, "", "P 32", 0},                    // 431
	{146, 146, "R 3", 'H', "", "R 3", 0},                    // 432
	{146, 1146, "R 3", 'R', "", "P 3*", 36},                 // 433
	{147, 147, "P -3", 0, "", "-P 3", 0},                    // 434
	{148, 148, "R -3", 'H', "", "-R 3", 0},                  // 435
	{148, 1148, "R -3", 'R', "", "-P 3*", 36},               // 436
	{149, 149, "P 3 1 2", 0, "", "P 3 2", 0},                // 437
	{150, 150, "P 3 2 1", 0, "", "P 3 2\"", 0},              // 438
	{151, 151, "P 31 1 2", 0, "", "P 31 2 (0 0 4)", 0},      // 439
	{152, 152, "P 31 2 1", 0, "", "P 31 2\"", 0},            // 440
	{153, 153, "P 32 1 2", 0, "", "P 32 2 (0 0 2)", 0},      // 441
	{154, 154, "P 32 2 1", 0, "", "P 32 2\"", 0},            // 442
	{155, 155, "R 3 2", 'H', "", "R 3 2\"", 0},              // 443
	{155, 1155, "R 3 2", 'R', "", "P 3* 2", 36},             // 444
	{156, 156, "P 3 m 1", 0, "", "P 3 -2\"", 0},             // 445
	{157, 157, "P 3 1 m", 0, "", "P 3 -2", 0},               // 446
	{158, 158, "P 3 c 1", 0, "", "P 3 -2\"c", 0},            // 447
	{159, 159, "P 3 1 c", 0, "", "P 3 -2c", 0},              // 448
	{160, 160, "R 3 m", 'H', "", "R 3 -2\"", 0},             // 449
	{160, 1160, "R 3 m", 'R', "", "P 3* -2", 36},            // 450
	{161, 161, "R 3 c", 'H', "", "R 3 -2\"c", 0},            // 451
	{161, 1161, "R 3 c", 'R', "", "P 3* -2n", 36},           // 452
	{162, 162, "P -3 1 m", 0, "", "-P 3 2", 0},              // 453
	{163, 163, "P -3 1 c", 0, "", "-P 3 2c", 0},             // 454
	{164, 164, "P -3 m 1", 0, "", "-P 3 2\"", 0},            // 455
	{165, 165, "P -3 c 1", 0, "", "-P 3 2\"c", 0},           // 456
	{166, 166, "R -3 m", 'H', "", "-R 3 2\"", 0},            // 457
	{166, 1166, "R -3 m", 'R', "", "-P 3* 2", 36},           // 458
	{167, 167, "R -3 c", 'H', "", "-R 3 2\"c", 0},           // 459
	{167, 1167, "R -3 c", 'R', "", "-P 3* 2n", 36},          // 460
	{168, 168, "P 6", 0, "", "P 6", 0},                      // 461
	{169, 169, "P 61", 0, "", "P 61", 0},                    // 462
	{170, 170, "P 65", 0, "", "P 65", 0},                    // 463
	{171, 171, "P 62", 0, "", "P 62", 0},                    // 464
	{172, 172, "P 64", 0, "", "P 64", 0},                    // 465
	{173, 173, "P 63", 0, "", "P 6c", 0},                    // 466
	{174, 174, "P -6", 0, "", "P -6", 0},                    // 467
	{175, 175, "P 6/m", 0, "", "-P 6", 0},                   // 468
	{176, 176, "P 63/m", 0, "", "-P 6c", 0},                 // 469
	{177, 177, "P 6 2 2", 0, "", "P 6 2", 0},                // 470
	{178, 178, "P 61 2 2", 0, "", "P 61 2 (0 0 5)", 0},      // 471
	{179, 179, "P 65 2 2", 0, "", "P 65 2 (0 0 1)", 0},      // 472
	{180, 180, "P 62 2 2", 0, "", "P 62 2 (0 0 4)", 0},      // 473
	{181, 181, "P 64 2 2", 0, "", "P 64 2 (0 0 2)", 0},      // 474
	{182, 182, "P 63 2 2", 0, "", "P 6c 2c", 0},             // 475
	{183, 183, "P 6 m m", 0, "", "P 6 -2", 0},               // 476
	{184, 184, "P 6 c c", 0, "", "P 6 -2c", 0},              // 477
	{185, 185, "P 63 c m", 0, "", "P 6c -2", 0},             // 478
	{186, 186, "P 63 m c", 0, "", "P 6c -2c", 0},            // 479
	{187, 187, "P -6 m 2", 0, "", "P -6 2", 0},              // 480
	{188, 188, "P -6 c 2", 0, "", "P -6c 2", 0},             // 481
	{189, 189, "P -6 2 m", 0, "", "P -6 -2", 0},             // 482
	{190, 190, "P -6 2 c", 0, "", "P -6c -2c", 0},           // 483
	{191, 191, "P 6/m m m", 0, "", "-P 6 2", 0},             // 484
	{192, 192, "P 6/m c c", 0, "", "-P 6 2c", 0},            // 485
	{193, 193, "P 63/m c m", 0, "", "-P 6c 2", 0},           // 486
	{194, 194, "P 63/m m c", 0, "", "-P 6c 2c", 0},          // 487
	{195, 195, "P 2 3", 0, "", "P 2 2 3", 0},                // 488
	{196, 196, "F 2 3", 0, "", "F 2 2 3", 0},                // 489
	{197, 197, "I 2 3", 0, "", "I 2 2 3", 0},                // 490
	{198, 198, "P 21 3", 0, "", "P 2ac 2ab 3", 0},           // 491
	{199, 199, "I 21 3", 0, "", "I 2b 2c 3", 0},             // 492
	{200, 200, "P m -3", 0, "", "-P 2 2 3", 0},              // 493
	{201, 201, "P n -3", '1', "", "P 2 2 3 -1n", 20},        // 494
	{201, 0, "P n -3", '2', "", "-P 2ab 2bc 3", 0},          // 495
	{202, 202, "F m -3", 0, "", "-F 2 2 3", 0},              // 496
	{203, 203, "F d -3", '1', "", "F 2 2 3 -1d", 27},        // 497
	{203, 0, "F d -3", '2', "", "-F 2uv 2vw 3", 0},          // 498
	{204, 204, "I m -3", 0, "", "-I 2 2 3", 0},              // 499
	{205, 205, "P a -3", 0, "", "-P 2ac 2ab 3", 0},          // 500
	{206, 206, "I a -3", 0, "", "-I 2b 2c 3", 0},            // 501
	{207, 207, "P 4 3 2", 0, "", "P 4 2 3", 0},              // 502
	{208, 208, "P 42 3 2", 0, "", "P 4n 2 3", 0},            // 503
	{209, 209, "F 4 3 2", 0, "", "F 4 2 3", 0},              // 504
	{210, 210, "F 41 3 2", 0, "", "F 4d 2 3", 0},            // 505
	{211, 211, "I 4 3 2", 0, "", "I 4 2 3", 0},              // 506
	{212, 212, "P 43 3 2", 0, "", "P 4acd 2ab 3", 0},        // 507
	{213, 213, "P 41 3 2", 0, "", "P 4bd 2ab 3", 0},         // 508
	{214, 214, "I 41 3 2", 0, "", "I 4bd 2c 3", 0},          // 509
	{215, 215, "P -4 3 m", 0, "", "P -4 2 3", 0},            // 510
	{216, 216, "F -4 3 m", 0, "", "F -4 2 3", 0},            // 511
	{217, 217, "I -4 3 m", 0, "", "I -4 2 3", 0},            // 512
	{218, 218, "P -4 3 n", 0, "", "P -4n 2 3", 0},           // 513
	{219, 219, "F -4 3 c", 0, "", "F -4a 2 3", 0},           // 514
	{220, 220, "I -4 3 d", 0, "", "I -4bd 2c 3", 0},         // 515
	{221, 221, "P m -3 m", 0, "", "-P 4 2 3", 0},            // 516
	{222, 222, "P n -3 n", '1', "", "P 4 2 3 -1n", 20},      // 517
	{222, 0, "P n -3 n", '2', "", "-P 4a 2bc 3", 0},         // 518
	{223, 223, "P m -3 n", 0, "", "-P 4n 2 3", 0},           // 519
	{224, 224, "P n -3 m", '1', "", "P 4n 2 3 -1n", 30},     // 520
	{224, 0, "P n -3 m", '2', "", "-P 4bc 2bc 3", 0},        // 521
	{225, 225, "F m -3 m", 0, "", "-F 4 2 3", 0},            // 522
	{226, 226, "F m -3 c", 0, "", "-F 4a 2 3", 0},           // 523
	{227, 227, "F d -3 m", '1', "", "F 4d 2 3 -1d", 27},     // 524
	{227, 0, "F d -3 m", '2', "", "-F 4vw 2vw 3", 0},        // 525
	{228, 228, "F d -3 c", '1', "", "F 4d 2 3 -1ad", 37},    // 526
	{228, 0, "F d -3 c", '2', "", "-F 4ud 2vw 3", 0},        // 527
	{229, 229, "I m -3 m", 0, "", "-I 4 2 3", 0},            // 528
	{230, 230, "I a -3 d", 0, "", "-I 4bd 2c 3", 0},         // 529
	{5, 5005, "I 1 21 1", 0, "", "I 2yb", 38},               // 530
	{5, 3005, "C 1 21 1", 0, "", "C 2yb", 14},               // 531
	{18, 1018, "P 21212(a)", 0, "", "P 2ab 2a", 14},         // 532
	{20, 1020, "C 2 2 21a)", 0, "", "C 2ac 2", 39},          // 533
	{21, 1021, "C 2 2 2a", 0, "", "C 2ab 2b", 14},           // 534
	{22, 1022, "F 2 2 2a", 0, "", "F 2 2c", 40},             // 535
	{23, 1023, "I 2 2 2a", 0, "", "I 2ab 2bc", 33},          // 536
	{94, 1094, "P 42 21 2a", 0, "", "P 4bc 2a", 20},         // 537
	{197, 1197, "I 2 3a", 0, "", "I 2ab 2bc 3", 30},         // 538
	{1, 0, "A 1", 0, "", "A 1", 41},                         // 539
	{1, 0, "B 1", 0, "", "B 1", 42},                         // 540
	{1, 0, "C 1", 0, "", "C 1", 43},                         // 541
	{1, 0, "F 1", 0, "", "F 1", 44},                         // 542
	{1, 0, "I 1", 0, "", "I 1", 45},                         // 543
	{2, 0, "A -1", 0, "", "-A 1", 41},                       // 544
	{2, 0, "B -1", 0, "", "-B 1", 42},                       // 545
	{2, 0, "C -1", 0, "", "-C 1", 43},                       // 546
	{2, 0, "F -1", 0, "", "-F 1", 44},                       // 547
	{2, 0, "I -1", 0, "", "-I 1", 45},                       // 548
	{4, 0, "C 1 1 21", 0, "", "C 2c", 46},                   // 549
	{12, 0, "F 1 2/m 1", 0, "", "-F 2y", 47},                // 550
	{64, 0, "A b a m", 0, "", "-A 2 2ab", 3},                // 551
	{117, 0, "C -4 2 b", 0, "", "C -4 2ya", 48},             // 552
	{139, 0, "F 4/m m m", 0, "", "-F 4 2", 48},              // 553
}

// basisOps holds the change-of-basis triplets referenced by
// SpaceGroup.BasisOpIdx.
var basisOps = [49]string{
	"x,y,z",
	"z,x,y",
	"y,z,x",
	"z,y,-x",
	"x,y,-x+z",
	"-x,z,y",
	"-x+z,x,y",
	"y,-x,z",
	"y,-x+z,x",
	"x-z,y,z",
	"z,x-z,y",
	"y,z,x-z",
	"z,y,-x+z",
	"x+z,y,-x",
	"x+1/4,y+1/4,z",
	"-x+z,z,y",
	"-x,x+z,y",
	"y,-x+z,z",
	"y,-x,x+z",
	"x+1/4,y-1/4,z",
	"x-1/4,y-1/4,z-1/4",
	"x-1/4,y-1/4,z",
	"z,x-1/4,y-1/4",
	"y-1/4,z,x-1/4",
	"x-1/2,y-1/4,z+1/4",
	"z+1/4,x-1/2,y-1/4",
	"y-1/4,z+1/4,x-1/2",
	"x+1/8,y+1/8,z+1/8",
	"x+1/4,y-1/4,z+1/4",
	"x-1/4,y+1/4,z",
	"x+1/4,y+1/4,z+1/4",
	"x,y+1/4,z+1/8",
	"x-1/4,y+1/4,z+1/4",
	"x-1/4,y+1/4,z-1/4",
	"x-1/2,y+1/4,z+1/8",
	"x-1/2,y+1/4,z-3/8",
	"-y+z,x+z,-x+y+z",
	"x-1/8,y-1/8,z-1/8",
	"x+1/4,y+1/4,-x+z-1/4",
	"x+1/4,y,z",
	"x,y,z+1/4",
	"-x,-1/2*y+1/2*z,1/2*y+1/2*z",
	"-1/2*x+1/2*z,-y,1/2*x+1/2*z",
	"1/2*x+1/2*y,1/2*x-1/2*y,-z",
	"1/2*y+1/2*z,1/2*x+1/2*z,1/2*x+1/2*y",
	"-1/2*x+1/2*y+1/2*z,1/2*x-1/2*y+1/2*z,1/2*x+1/2*y-1/2*z",
	"-1/2*x+z,1/2*x,y",
	"x-1/2*z,y,1/2*z",
	"1/2*x+1/2*y,-1/2*x+1/2*y,z",
}

// altNames maps spellings used by CCP4, in old PDB entries and in the
// 1990's literature onto catalog positions.
var altNames = [...]altName{
	{"A e m 2", 0, 190},
	{"B m e 2", 0, 191},
	{"B 2 e m", 0, 192},
	{"C 2 m e", 0, 193},
	{"C m 2 e", 0, 194},
	{"A e 2 m", 0, 195},
	{"A e a 2", 0, 202},
	{"B b e 2", 0, 203},
	{"B 2 e b", 0, 204},
	{"C 2 c e", 0, 205},
	{"C c 2 e", 0, 206},
	{"A e 2 a", 0, 207},
	{"C m c e", 0, 303},
	{"C c m e", 0, 304},
	{"A e m a", 0, 305},
	{"A e a m", 0, 306},
	{"B b e m", 0, 307},
	{"B m e b", 0, 308},
	{"C m m e", 0, 315},
	{"A e m m", 0, 317},
	{"B m e m", 0, 319},
	{"C c c e", '1', 321},
	{"C c c e", '2', 322},
	{"A e a a", '1', 325},
	{"A e a a", '2', 326},
	{"B b e b", '1', 329},
	{"B b e b", '2', 330},
}

// pointGroupByNumber gives the PointGroup ordinal for each space-group
// number 1..230.
var pointGroupByNumber = [230]PointGroup{
	0, 1, 2, 2, 2, 3, 3, 3, 3, 4,
	4, 4, 4, 4, 4, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 6, 6, 6, 6, 6, 6,
	6, 6, 6, 6, 6, 6, 6, 6, 6, 6,
	6, 6, 6, 6, 6, 6, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 8, 8, 8, 8, 8, 8,
	9, 9, 10, 10, 10, 10, 10, 10, 11, 11,
	11, 11, 11, 11, 11, 11, 11, 11, 12, 12,
	12, 12, 12, 12, 12, 12, 12, 12, 12, 12,
	13, 13, 13, 13, 13, 13, 13, 13, 13, 13,
	13, 13, 14, 14, 14, 14, 14, 14, 14, 14,
	14, 14, 14, 14, 14, 14, 14, 14, 14, 14,
	14, 14, 15, 15, 15, 15, 16, 16, 17, 17,
	17, 17, 17, 17, 17, 18, 18, 18, 18, 18,
	18, 19, 19, 19, 19, 19, 19, 20, 20, 20,
	20, 20, 20, 21, 22, 22, 23, 23, 23, 23,
	23, 23, 24, 24, 24, 24, 25, 25, 25, 25,
	26, 26, 26, 26, 27, 27, 27, 27, 27, 28,
	28, 28, 28, 28, 28, 28, 29, 29, 29, 29,
	29, 29, 29, 29, 30, 30, 30, 30, 30, 30,
	31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
}

// ccp4HklAsu selects, per space-group number 1..230, which of the ten
// reciprocal-space asymmetric-unit conditions applies in the reference
// setting.
var ccp4HklAsu = [230]int8{
	0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 3, 3, 3, 3,
	3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4,
	4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4,
	4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 5, 5, 5, 5, 5, 5, 6, 7, 6, 7, 6, 7, 7, 7,
	6, 7, 6, 7, 7, 6, 6, 7, 7, 7, 7, 3, 3, 3, 3, 3, 3, 3, 3, 3, 4, 4, 4, 4, 4, 4,
	4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8, 9, 9,
	9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9,
}
