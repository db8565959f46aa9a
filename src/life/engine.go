package life

/*
	Engine is one update strategy for the board.
	Advance reads a frozen current generation and returns a freshly
	allocated, fully computed next generation. The call blocks until every
	cell of the result is written, so a caller never observes a partial
	generation. All engines produce identical boards for identical input,
	they differ only in how the work is scheduled.
*/
type Engine interface {
	Name() string
	Advance(current Board) Board
}

//Engines maps engine names to their constructors.
//The workers argument is ignored by the sequential engine.
var Engines = map[string]func(workers int) Engine{
	"sequential":  NewSequentialEngine,
	"partitioned": NewPartitionedEngine,
	"pool":        NewPoolEngine,
}
