/*
Package seqs is the lazy sequence-combinator engine behind a dynamic language's
collection library.

Every combinator accepts any supported source (see [Of]) and returns a [Seq],
a Go 1.23+ range-over-func iterator that yields (value, error) pairs:

  - **Coercion**: [Of] turns pair-lists, vectors, slices, strings, iterators and
    channels into a [Seq]; [Pull] exposes a single-pass [Iterator] with lookahead.
  - **Callables**: predicates, keys, tests and reducers are [Callable] values.
    [Identity], [EqualTest] and [CompareTest] are the defaults.
  - **Transformations**: [Map], [Filter], [Remove], [Keep], [Zip], [Interleave],
    [Flatten], [Reductions], etc.
  - **Flow Control**: [Take], [Drop], [TakeWhile], [DropWhile], [Subseq], [SplitAt].
  - **Ordering**: [Merge] and [Sort] (stable top-down merge sort), [Shuffle].
  - **Windowing**: [Partition], [PartitionBy], [GroupBy].
  - **Concurrency**: [ParallelMap] runs a task per element on a worker pool and
    yields results in input order.

# Laziness

A [Seq] does no work until ranged over, and produces exactly one element per
pull. Unbounded generators ([Iterate], [Repeat], [Repeatedly], [Cycle], [Range])
compose with bounded consumers such as [Take]:

	for v, err := range seqs.Take(3, seqs.Iterate(-1, inc, 0)) {
		...
	}

# Error Handling

A failing callable aborts the pull in progress. The error is yielded once as
(nil, err) and the sequence ends. Consumers stop at the first non-nil error;
[Collect] and the other realizers do that for you.
*/
package seqs
