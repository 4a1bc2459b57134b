package domain

// MaxListLimit caps how many leads a list endpoint returns
const MaxListLimit = 1000
