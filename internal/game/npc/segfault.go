package npc

// segfaultDefinition is a hostile daemon. The encounter ends when it is
// destroyed or when the player has talked it through to the end.
var segfaultDefinition = definition{
	id:       "segfault",
	maxHP:    30,
	hidden:   "segfault",
	name:     "segfault",
	revealAt: 0,
	info: []string{
		"segfault",
		"A daemon stitched together from core dumps.",
		"It dereferences anything that stands still.",
	},
	script: Script{Steps: []Step{
		{Lines: lines(narrate("a daemon crawls out of a core dump and blocks the road!"))},
		{Lines: lines(say("SIGSEGV! SIGSEGV!", "Inspect it", "Back away"))},
		{Branches: [][]Line{
			lines(narrate("it keeps dereferencing the same null pointer. only an access level 2 `fireball` could clear it out, so talk it down instead.")),
			lines(say("it follows you, leaking memory everywhere.")),
		}},
		{Lines: lines(
			narrate("the daemon forks itself."),
			narrate("there are two of them now. or maybe that's just a dangling reference."),
		)},
		{Lines: lines(say("core dumped."))},
		{Lines: lines(narrate("the daemon slips away into /dev/null."))},
	}},
}
