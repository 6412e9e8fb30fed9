package handler

import "math/rand"

type calendarColor struct {
	Color     string
	TextColor string
}

// Палитра бейджей календаря, назначается при создании и дальше не меняется
var palette = []calendarColor{
	{"bg-blue-200 border-blue-400", "text-blue-800"},
	{"bg-green-200 border-green-400", "text-green-800"},
	{"bg-yellow-200 border-yellow-400", "text-yellow-800"},
	{"bg-purple-200 border-purple-400", "text-purple-800"},
	{"bg-pink-200 border-pink-400", "text-pink-800"},
	{"bg-indigo-200 border-indigo-400", "text-indigo-800"},
	{"bg-red-200 border-red-400", "text-red-800"},
	{"bg-teal-200 border-teal-400", "text-teal-800"},
}

func randomColor() calendarColor {
	return palette[rand.Intn(len(palette))]
}
