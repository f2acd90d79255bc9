package npc

import "github.com/cory-johannsen/inferno/internal/game/state"

// say is a line labelled with the speaker's name.
func say(msg string, choices ...string) Line {
	return Line{Message: msg, Speaker: true, Choices: choices}
}

// narrate is an unlabelled line.
func narrate(msg string, choices ...string) Line {
	return Line{Message: msg, Choices: choices}
}

func lines(l ...Line) []Line { return l }

// aliceDefinition is the tutorial guide met at the start of the map. It hands
// the player the details panel and then the terminal.
var aliceDefinition = definition{
	id:       "alice",
	maxHP:    unkillable,
	hidden:   "???",
	name:     "BreeDFS",
	revealAt: 17,
	info: []string{
		"BreeDFS",
		"A floating sphere resembling the BreeDFS logo.",
		"The ultimate form of evil, overlord of hell.",
	},
	script: Script{Steps: []Step{
		// 0
		{Lines: lines(say("oh hi human being! welcome to hell!")), Unlock: state.ProgressHasPanel},
		{Lines: lines(narrate("you're new here, right?", "Yeah", "I guess...?"))},
		{Lines: lines(say("oh cool! do you remember what happened?", "No"))},
		{Lines: lines(say("hmm. i suppose there's this possibility -"))},
		{Lines: lines(narrate("that you have just died.", "What?", "Wait I remember! There was a truck..."))},
		// 5: answer to "that you have just died."
		{Branches: [][]Line{
			lines(say("this is the inferno. a place where deceased souls and other creatures belong.")),
			lines(say("so it seems like you do remember...")),
		}},
		{Branches: [][]Line{
			lines(narrate("i'm sorry, human. but i have some bad news. you have just died.")),
			lines(say("yep. that truck did not stop.")),
		}},
		{Lines: lines(narrate("...."))},
		{Lines: lines(narrate("anyways, the hell is currently undergoing some system upgrades."))},
		{Lines: lines(
			narrate("things have been going really, *really* bad lately."),
			narrate("bugs are everywhere, and even the most overworked workers couldn't fix them."),
			narrate("even worse, at least half of them quit their jobs last month."),
		)},
		// 10
		{Lines: lines(narrate("i've heard about you before. you were an engineer, right?", "Yes.", "No?"))},
		{Branches: [][]Line{
			lines(say("cool!!!")),
			lines(say("liars will be burning in hell!")),
		}},
		{Lines: lines(
			narrate("so as i said, we kind of need a new maintainer of our technology systems, stat."),
			narrate("are you interested in helping us?", "yes", "Yes", "YES", "YES", "YES"),
		)},
		{Lines: lines(say("OMG THANKS!!1!1! i knew you would help me, kind human!!", "??????"))},
		{Lines: lines(
			say("from now on, you are our new system administrator!"),
			narrate("do you think you are qualified for this job?", "yeah!", "Of course!", "Definitely!"),
		)},
		// 15
		{Lines: lines(say("ok! i'll introduce your job to you soon.", "Wait you're cheating!", "I didn't have a choice..."))},
		{Lines: lines(
			say("oh of course you don't have a choice."),
			narrate("i am a literal god. i control this place."),
		)},
		{Lines: lines(say("anyways, my name is BreeDFS. nice to meet you!", "Oh, that's why you looked very familiar..."))},
		{Lines: lines(say("...what??"))},
		{Lines: lines(
			narrate("...."),
			narrate("let's just get to the point."),
		)},
		// 20
		{Lines: lines(
			narrate("to help you do your job, i have unlocked a new feature for you."),
			narrate("see the \"terminal\" hint at the bottom? press tab to open it and see what happens."),
		), Unlock: state.ProgressHasTerminal},
		{Lines: lines(
			narrate("isn't it cool?"),
			narrate("the Terminal is what we use to do our jobs efficiently."),
			narrate("we usually use \"commands\" to complete our tasks."),
			narrate("for example, right now you can try some simple commands like `help`.", "Nice."),
		)},
		{Lines: lines(
			say("as your \"access level\" increases, you will unlock more powerful commands."),
			narrate("the \"details\" panel shows your access level as well as some other stats."),
		)},
		{Lines: lines(
			narrate("although you only have a few commands available now, you should really take your time to familiarize yourself with the terminal!"),
			narrate("after you've messed around enough, press \"OK\" below.", "OK"),
		)},
		{Lines: lines(narrate("that's about it! i gotta leave now though... the rest is up to you!"))},
	}},
}
