package config

import "math"

var hole = Value(math.NaN())

var Presets = map[string]map[string]*Config{
	"sort": {
		"demo": {
			Algorithm: "bubble", Values: []Value{5, 3, 8, 1, 9, 2, 7}, Target: hole,
			Delays: DelayConfig{SortMs: DefaultSortMs},
		},
		"reversed": {
			Algorithm: "quick", Values: []Value{9, 8, 7, 6, 5, 4, 3, 2, 1}, Target: hole,
			Delays: DelayConfig{SortMs: DefaultSortMs},
		},
		"nearly": {
			Algorithm: "insertion", Values: []Value{1, 2, 4, 3, 5, 7, 6, 8}, Target: hole,
			Delays: DelayConfig{SortMs: DefaultSortMs},
		},
		"duplicates": {
			Algorithm: "merge", Values: []Value{4, 2, 4, 1, 2, 4}, Target: hole,
			Delays: DelayConfig{SortMs: DefaultSortMs},
		},
	},
	"search": {
		"hit": {
			Algorithm: "binary", Values: []Value{1, 3, 5, 8, 13, 21}, Target: 8,
			Delays: DelayConfig{SearchMs: DefaultSearchMs},
		},
		"miss": {
			Algorithm: "jump", Values: []Value{2, 4, 6, 8, 10, 12, 14, 16}, Target: 7,
			Delays: DelayConfig{SearchMs: DefaultSearchMs},
		},
		"unsorted": {
			Algorithm: "exponential", Values: []Value{9, 1, 5, 12, 3}, Target: 5,
			Delays: DelayConfig{SearchMs: DefaultSearchMs},
		},
	},
	"traversal": {
		"balanced": {
			Algorithm: "bfs", Values: []Value{1, 2, 3, 4, 5, 6, 7}, Target: hole,
			Delays: DelayConfig{TraversalMs: DefaultTraversalMs},
		},
		"holes": {
			Algorithm: "dfs", Values: []Value{8, 3, 10, 1, hole, hole, 14}, Target: hole,
			Order:  "inorder",
			Delays: DelayConfig{TraversalMs: DefaultTraversalMs},
		},
		"hunt": {
			Algorithm: "dfs", Values: []Value{5, 3, 8, 1, 4, 7, 9}, Target: 4,
			Order:  "preorder",
			Delays: DelayConfig{TraversalMs: DefaultTraversalMs},
		},
	},
}

func GetPreset(family, preset string) *Config {
	familyPresets, ok := Presets[family]
	if !ok {
		return nil
	}
	cfg, ok := familyPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(family string) []string {
	familyPresets, ok := Presets[family]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(familyPresets))
	for name := range familyPresets {
		names = append(names, name)
	}
	return names
}
