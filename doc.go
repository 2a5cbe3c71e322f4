/*
GPSCA prints the GPS L1 C/A codes of IS-GPS-200 for use by software receivers.

Each satellite's code is the sum modulo 2 of two 10-stage shift registers, G1
and G2, clocked 1023 times from an all ones seed. The codes are built once per
process from the published tap table and never change afterwards. Receivers
should import github.com/bemasher/gpsca/ca directly, the command exists for
inspection and for generating tables for other tools.

Command-line Flags:

	--prn=1,2,32

Comma-separated list of PRNs to output. Defaults to all 32.

	--format=plain

Sets the output format: plain, octal, csv, json or xml. Plain text is formatted
using the following format string:

	{PRN:%02d Taps:%v First:%s Chips:%s}

Octal prints only the PRN and the first 10 chips in octal, the same layout as
IS-GPS-200 Table 3-Ia. For json and xml output each line is an element, there
is no root node. CSV output begins with a header row.

	--taps=""

Reads an alternate tap table from a TOML file:

	[[satellite]]
	id = 1
	taps = [2, 6]

Every PRN from 1 to 32 must appear exactly once with exactly two taps between
1 and 10. Any defect aborts before a single code is generated and names the
offending satellite.

	--samplerate=0
	--samples=2048
	--codephase=0

When samplerate is non-zero, outputs samples of each code's bipolar replica
(chip 0 as +1, chip 1 as -1) at the given rate and code phase instead of the
chips.

	--verbose

Logs the code table source and replica configuration to stderr.

	--version

Prints the build tag, date and commit hash.

Every flag may also be given as an environment variable named GPSCA_ followed
by the upper case flag name, e.g. GPSCA_FORMAT=csv. Flags on the command line
take precedence, a --prn list replaces GPSCA_PRN rather than adding to it.
*/
package main
