// Package onto provides the narrative domain vocabulary: event/state class
// IRIs, agent and location class IRIs, and the role predicates used when
// assembling clause graphs.
//
// The vocabulary follows a single flat namespace. Classes are referred to by
// prefixed local names (":Person", ":MovementTravelAndTransportation") in the
// emitted Turtle, with the prefix bound to Namespace in the output prologue.
//
// Multiple inheritance is represented outside this package as a "+"-joined
// local-name string (for example ":AchievementAndAccomplishment+:End"); the
// constants here are always single classes.
package onto
