package config

var defaultCitationCommands = []string{
	"cite", "cite*", "Cite", "nocite", "citet", "citet*",
	"citep", "citep*", "citeauthor", "citeauthor*", "Citeauthor", "Citeauthor*",
	"citetitle", "citetitle*", "citeyear", "citeyear*", "citedate", "citedate*",
	"citeurl", "fullcite", "citeyearpar", "citealt", "citealp", "citetext",
	"parencite", "parencite*", "Parencite", "footcite", "footfullcite", "footcitetext",
	"textcite", "Textcite", "smartcite", "supercite", "autocite", "autocite*",
	"Autocite", "Autocite*", "volcite", "Volcite", "pvolcite", "Pvolcite",
	"fvolcite", "ftvolcite", "svolcite", "Svolcite", "tvolcite", "Tvolcite",
	"avolcite", "Avolcite", "notecite", "pnotecite", "Pnotecite", "fnotecite",
	"citeA", "citeA*",
}

var defaultLabelDefinitionCommands = []string{
	"label",
}

var defaultLabelReferenceCommands = []string{
	"ref", "vref", "Vref", "autoref", "pageref", "cref",
	"cref*", "Cref", "Cref*", "namecref", "nameCref", "lcnamecref",
	"namecrefs", "nameCrefs", "lcnamecrefs", "labelcref", "labelcpageref", "eqref",
	"nameref", "Nameref", "cpageref", "Cpageref",
}

var defaultLabelReferenceRangeCommands = []string{
	"crefrange", "crefrange*", "Crefrange", "Crefrange*", "cpagerefrange", "Cpagerefrange",
}

var defaultIncludeCommands = []string{
	"input", "include", "subfile", "subfileinclude",
}

var defaultBibliographyIncludeCommands = []string{
	"bibliography", "addbibresource", "addglobalbib", "addsectionbib",
}

var defaultClassIncludeCommands = []string{
	"documentclass",
}

var defaultVerbatimEnvironments = []string{
	"pycode", "minted", "asy", "lstlisting", "verbatim",
}
