// Package lookup holds the static and loaded number tables the expansion
// step resolves indirect entries against: the family pana partition and the
// SP/DP/CP type tables.
package lookup

import (
	"strconv"

	"github.com/SohamSachinDhore/bet-v2/internal/parser"
)

// The family table partitions pana space into three groups of 8, 6 and 6
// rows over 11 columns. Numbers sharing a column within a group form one
// family; a family entry assigns its value to every member.
var familyGroups = [][][]int{
	{
		{128, 245, 129, 345, 120, 139, 130, 239, 140, 230, 227},
		{137, 290, 147, 390, 157, 148, 158, 248, 159, 258, 277},
		{236, 470, 246, 480, 256, 346, 356, 347, 456, 357, 222},
		{678, 579, 679, 589, 670, 689, 680, 789, 690, 780, 777},
		{123, 240, 124, 340, 125, 134, 135, 234, 145, 235, 449},
		{178, 259, 179, 359, 170, 189, 180, 289, 190, 280, 499},
		{268, 457, 269, 458, 260, 369, 360, 379, 460, 370, 444},
		{367, 790, 467, 890, 567, 468, 568, 478, 569, 578, 999},
	},
	{
		{146, 380, 138, 156, 238, 247, 167, 257, 168, 249, 166},
		{119, 335, 336, 110, 337, 229, 112, 220, 113, 447, 116},
		{669, 588, 688, 660, 788, 779, 266, 770, 366, 799, 111},
		{169, 358, 368, 160, 378, 279, 126, 270, 136, 479, 666},
		{114, 330, 133, 115, 233, 224, 117, 225, 118, 244, 338},
		{466, 880, 188, 566, 288, 477, 667, 577, 668, 299, 388},
	},
	{
		{489, 560, 237, 570, 490, 580, 149, 590, 267, 348, 888},
		{344, 100, 228, 200, 445, 300, 446, 400, 122, 339, 333},
		{399, 155, 778, 255, 599, 355, 699, 455, 177, 889, 500},
		{349, 150, 278, 250, 459, 350, 469, 450, 127, 389, 550},
		{448, 556, 223, 557, 440, 558, 144, 559, 226, 334, 555},
		{899, 600, 377, 700, 990, 800, 199, 900, 677, 488, 0},
	},
}

// familyLookup maps every table member to its full column family,
// reference included. Built once at init.
var familyLookup = buildFamilyLookup()

func buildFamilyLookup() map[int][]int {
	lookup := make(map[int][]int)
	for _, group := range familyGroups {
		for col := 0; col < 11; col++ {
			family := make([]int, 0, len(group))
			for _, row := range group {
				family = append(family, row[col])
			}
			for _, n := range family {
				lookup[n] = family
			}
		}
	}
	return lookup
}

// FamilyMembers returns every pana number in the reference's family, the
// reference itself included, or an UnknownFamily error when the reference
// is not in the table.
func FamilyMembers(reference int) ([]int, error) {
	family, ok := familyLookup[reference]
	if !ok {
		return nil, &UnknownFamilyError{Reference: reference}
	}
	out := make([]int, len(family))
	copy(out, family)
	return out, nil
}

// UnknownFamilyError is returned for references outside the family table.
type UnknownFamilyError struct {
	Reference int
}

func (e *UnknownFamilyError) Error() string {
	return "family reference not in table: " + strconv.Itoa(e.Reference)
}

// Code returns the parse error code for rendering alongside line errors.
func (e *UnknownFamilyError) Code() parser.ErrorCode { return parser.CodeUnknownFamily }
